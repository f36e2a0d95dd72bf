package tart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteWriter(t *testing.T) {
	tpl, err := FromString("hello world")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.ExecuteWriter(&buf))
	assert.Equal(t, "hello world\n", buf.String())
}

func TestExecuteWriterEmptyOutput(t *testing.T) {
	tpl, err := FromString("[let x 1]")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.ExecuteWriter(&buf))
	assert.Equal(t, "", buf.String())
}

func TestFromStringLexError(t *testing.T) {
	_, err := FromString(`"unterminated`)
	require.Error(t, err)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "lexer", terr.Sender)
	assert.Equal(t, "<string>", terr.Filename)
}

func TestFromStringParseError(t *testing.T) {
	_, err := FromString("[unclosed")
	require.Error(t, err)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "parser", terr.Sender)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile("/definitely/not/here.tart")
	require.Error(t, err)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "fromfile", terr.Sender)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(FromString("fine"))
	})
	assert.Panics(t, func() {
		Must(FromString("[broken"))
	})
}

func TestExecuteIsRepeatable(t *testing.T) {
	// Each Execute starts from a fresh root environment.
	tpl, err := FromString("[let x once] [get x]")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		out, err := tpl.Execute()
		require.NoError(t, err)
		assert.Equal(t, "once", out)
	}
}

func TestNewSetRequiresLoader(t *testing.T) {
	assert.Panics(t, func() {
		NewSet("bad", nil)
	})
}

func TestErrorIsUsableWithStdErrors(t *testing.T) {
	_, err := FromString("]")
	require.Error(t, err)
	var terr *Error
	assert.True(t, errors.As(err, &terr))
}

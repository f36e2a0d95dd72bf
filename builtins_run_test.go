package tart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocument(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func mustCanonical(t *testing.T, path string) string {
	t.Helper()
	canonical, err := canonicalPath(path)
	require.NoError(t, err)
	return canonical
}

func TestRunSharesEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "helper.tart",
		"[let greet [lambda [name] [string hello [get name]]]]")
	main := writeDocument(t, dir, "main.tart",
		"[run helper.tart] [greet World]")

	tpl, err := FromFile(main)
	require.NoError(t, err)
	out, err := tpl.Execute()
	require.NoError(t, err)
	assert.Equal(t, "hello World", out)
}

func TestRunResolvesRelativeToIncludingFile(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, filepath.Join("partials", "word.tart"), "[let word deep]")
	main := writeDocument(t, dir, "main.tart",
		"[run partials/word.tart] [get word]")

	tpl, err := FromFile(main)
	require.NoError(t, err)
	out, err := tpl.Execute()
	require.NoError(t, err)
	assert.Equal(t, "deep", out)
}

func TestRunOverridesAndRestoresFileBinding(t *testing.T) {
	dir := t.TempDir()
	b := writeDocument(t, dir, "b.tart", "[let seen [get file]]")
	a := writeDocument(t, dir, "a.tart", "[run b.tart] [get seen] [get file]")

	tpl, err := FromFile(a)
	require.NoError(t, err)
	out, err := tpl.Execute()
	require.NoError(t, err)

	want := strings.Join([]string{mustCanonical(t, b), mustCanonical(t, a)}, " ")
	assert.Equal(t, want, out)
}

func TestRunNestedIncludes(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, filepath.Join("sub", "inner.tart"), "[let inner yes]")
	writeDocument(t, dir, filepath.Join("sub", "outer.tart"),
		"[run inner.tart] [let outer yes]")
	main := writeDocument(t, dir, "main.tart",
		"[run sub/outer.tart] [get inner] [get outer]")

	tpl, err := FromFile(main)
	require.NoError(t, err)
	out, err := tpl.Execute()
	require.NoError(t, err)
	assert.Equal(t, "yes yes", out)
}

func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	main := writeDocument(t, dir, "main.tart", "[run nope.tart]")

	tpl, err := FromFile(main)
	require.NoError(t, err)
	_, err = tpl.Execute()
	require.Error(t, err)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 1, terr.Line)
}

func TestRunDiscardsIncludedOutput(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "noisy.tart", "this text is not emitted")
	main := writeDocument(t, dir, "main.tart", "[run noisy.tart] only this")

	tpl, err := FromFile(main)
	require.NoError(t, err)
	out, err := tpl.Execute()
	require.NoError(t, err)
	assert.Equal(t, "only this", out)
}

func TestRunArity(t *testing.T) {
	err := executeError(t, "[run]")
	assert.ErrorContains(t, err, "`run` expects 1 argument(s), received 0")
}

func TestRunRejectsNonStringFileBinding(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "other.tart", "")
	main := writeDocument(t, dir, "main.tart",
		"[set file [vector]] [run other.tart]")

	tpl, err := FromFile(main)
	require.NoError(t, err)
	_, err = tpl.Execute()
	assert.ErrorContains(t, err, "`run` expects the `file` variable to be a string")
}

func TestRunErrorInsideIncludedDocument(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "bad.tart", "[boom]")
	main := writeDocument(t, dir, "main.tart", "x\n[run bad.tart]")

	tpl, err := FromFile(main)
	require.NoError(t, err)
	_, err = tpl.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, "use of undeclared variable `boom`")
	// The diagnostic reports the outermost call site in the caller.
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 2, terr.Line)
	assert.Equal(t, mustCanonical(t, main), terr.Filename)
}

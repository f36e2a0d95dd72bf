package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadConfig(filepath.Join(dir, "doc.tart"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxCallDepth)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigBesideSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, configFilename),
		[]byte("max-call-depth: 32\nverbose: true\n"), 0o644))

	cfg, err := loadConfig(filepath.Join(dir, "doc.tart"))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.MaxCallDepth)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, configFilename),
		[]byte("max-call-depth: [not a number\n"), 0o644))

	_, err := loadConfig(filepath.Join(dir, "doc.tart"))
	assert.Error(t, err)
}

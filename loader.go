package tart

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
)

// SourceLoader allows to implement a virtual file system for the `run`
// builtin and the From*-functions.
type SourceLoader interface {
	// Abs calculates the path to a given document. Whenever a path must be
	// resolved due to a `run` from another document, the base equals the
	// including document's path.
	Abs(base, name string) string

	// Get returns an io.Reader where the document's content can be read from.
	Get(path string) (io.Reader, error)
}

// LocalFilesystemLoader loads documents from the local filesystem,
// resolving relative paths against the including document's directory (or
// against a fixed base directory when one is configured).
type LocalFilesystemLoader struct {
	baseDir string
}

// MustNewLocalFileSystemLoader behaves like NewLocalFileSystemLoader but
// panics on an error.
func MustNewLocalFileSystemLoader(baseDir string) *LocalFilesystemLoader {
	fs, err := NewLocalFileSystemLoader(baseDir)
	if err != nil {
		panic(err)
	}
	return fs
}

func NewLocalFileSystemLoader(baseDir string) (*LocalFilesystemLoader, error) {
	fs := &LocalFilesystemLoader{}
	if baseDir != "" {
		if err := fs.SetBaseDir(baseDir); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return fs, nil
}

// SetBaseDir sets the loader's base directory. This directory will be used
// for any relative path in the `run` builtin. FromFile does not consult it:
// a relative path given to FromFile resolves against the working directory.
func (fs *LocalFilesystemLoader) SetBaseDir(path string) error {
	// Make the path absolute
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Trace(err)
		}
		path = abs
	}

	// Check for existence
	fi, err := os.Stat(path)
	if err != nil {
		return errors.Trace(err)
	}
	if !fi.IsDir() {
		return errors.Errorf("the given path '%s' is not a directory", path)
	}

	fs.baseDir = path
	return nil
}

// Get reads the document at path fully into memory.
func (fs *LocalFilesystemLoader) Get(path string) (io.Reader, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "cannot read %s", path)
	}
	return bytes.NewReader(buf), nil
}

// Abs resolves a filename relative to the base directory. Absolute paths
// are passed through. Without a base directory the including document's
// directory wins; without that, the working directory.
func (fs *LocalFilesystemLoader) Abs(base, name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	// Our own base dir has always priority; if there's none
	// we use the path provided in base.
	var err error
	if fs.baseDir == "" {
		if base == "" {
			base, err = os.Getwd()
			if err != nil {
				panic(err)
			}
			return filepath.Join(base, name)
		}

		return filepath.Join(filepath.Dir(base), name)
	}

	return filepath.Join(fs.baseDir, name)
}

// canonicalPath resolves path to its real absolute form, following
// symlinks. The `file` binding always holds a canonical path.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Trace(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Trace(err)
	}
	return resolved, nil
}

package tart

import (
	"io"
	"os"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Set groups documents sharing one loader and one configuration. It's
// useful for a separation of different kinds of documents (e. g. documents
// rendered from disk vs documents compiled from strings in tests).
type Set struct {
	name   string
	loader SourceLoader

	// Options allow you to change the behavior of the runtime.
	// Change them before calling the Execute method.
	Options *Options

	// logger receives debug output from ExecutionContext.Logf. The default
	// is a no-op logger.
	logger *zap.Logger

	// printOutput is the sink of the `print` builtin.
	printOutput io.Writer
}

// NewSet can be used to create sets with a different loader or other
// configuration.
func NewSet(name string, loader SourceLoader) *Set {
	if loader == nil {
		panic(errors.Errorf("a source loader must be specified"))
	}
	return &Set{
		name:        name,
		loader:      loader,
		Options:     newOptions(),
		logger:      zap.NewNop(),
		printOutput: os.Stdout,
	}
}

// SetLogger installs a structured logger receiving debug output from
// document evaluation.
func (set *Set) SetLogger(logger *zap.Logger) {
	set.logger = logger
}

// SetPrintOutput redirects the `print` builtin to w. The default sink is
// stdout.
func (set *Set) SetPrintOutput(w io.Writer) {
	set.printOutput = w
}

// resolveFilename resolves name relative to the document at base using the
// set's loader.
func (set *Set) resolveFilename(base, name string) string {
	return set.loader.Abs(base, name)
}

// FromString loads a document from string and returns a Template instance.
// Its `file` binding is the placeholder "<string>", so `run` with relative
// paths resolves against the working directory.
func (set *Set) FromString(source string) (*Template, error) {
	return newTemplate(set, "<string>", source)
}

// FromFile loads a document from path and returns a Template instance. The
// path is canonicalized first; the result becomes the document's `file`
// binding.
func (set *Set) FromFile(path string) (*Template, error) {
	canonical, err := canonicalPath(path)
	if err != nil {
		return nil, &Error{
			Filename:  path,
			Sender:    "fromfile",
			OrigError: err,
		}
	}
	rd, err := set.loader.Get(canonical)
	if err != nil {
		return nil, &Error{
			Filename:  canonical,
			Sender:    "fromfile",
			OrigError: err,
		}
	}
	buf, err := io.ReadAll(rd)
	if err != nil {
		return nil, &Error{
			Filename:  canonical,
			Sender:    "fromfile",
			OrigError: errors.Trace(err),
		}
	}
	return newTemplate(set, canonical, string(buf))
}

// DefaultLoader allows the default set to load documents from the local
// filesystem, resolving `run` paths against the including document.
var DefaultLoader = MustNewLocalFileSystemLoader("")

// DefaultSet is a set created for you for convenience reasons.
var DefaultSet = NewSet("default", DefaultLoader)

// FromString loads a document from string using the default set.
func FromString(source string) (*Template, error) {
	return DefaultSet.FromString(source)
}

// FromFile loads a document from path using the default set.
func FromFile(path string) (*Template, error) {
	return DefaultSet.FromFile(path)
}

package tart

import (
	"io"
)

// Template is a compiled tart document: the source together with its token
// stream and AST, ready to be evaluated.
type Template struct {
	set *Set

	// Input
	name   string
	source string

	// Calculation
	tokens []*Token
	parser *Parser

	// Output
	root *Document
}

func newTemplate(set *Set, name, source string) (*Template, error) {
	// Create the template
	t := &Template{
		set:    set,
		name:   name,
		source: source,
	}

	// Tokenize it
	tokens, err := lex(name, source)
	if err != nil {
		return nil, err
	}
	t.tokens = tokens

	// Parse it
	t.parser = newParser(name, tokens)
	root, err := t.parser.parseDocument()
	if err != nil {
		return nil, err
	}
	t.root = root

	return t, nil
}

// Name returns the canonical path (or "<string>") this template was
// compiled from.
func (tpl *Template) Name() string {
	return tpl.name
}

// Execute evaluates the document against a fresh root environment and
// returns the whitespace-aware assembly of its top-level results, without
// a trailing newline.
func (tpl *Template) Execute() (string, error) {
	env := newRootEnvironment(tpl.name)
	ctx := newExecutionContext(tpl, env)
	return tpl.root.Execute(ctx)
}

// ExecuteWriter evaluates the document and, if the output is non-empty,
// writes it followed by a newline to w.
func (tpl *Template) ExecuteWriter(w io.Writer) error {
	out, err := tpl.Execute()
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

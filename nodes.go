package tart

import (
	"errors"
	"fmt"
	"strings"
)

// Node is a single expression of a tart document. Evaluate yields the
// expression's runtime value against the given execution context.
type Node interface {
	Evaluate(ctx *ExecutionContext) (*Value, error)
	Position() *Token
	String() string
}

// Document is the root node: the ordered top-level expressions of a source
// file.
type Document struct {
	Nodes []Node
}

// Execute evaluates every top-level expression in order, stringifies the
// results and assembles them with the whitespace-aware join rule. This is
// the mechanism by which interleaved text and helper calls become a single
// document.
func (doc *Document) Execute(ctx *ExecutionContext) (string, error) {
	parts := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		val, err := n.Evaluate(ctx)
		if err != nil {
			return "", err
		}
		s, err := val.Stringify()
		if err != nil {
			return "", ctx.OrigError(err, n.Position())
		}
		parts = append(parts, s)
	}
	return joinWhitespaceAware(parts), nil
}

func (doc *Document) String() string {
	parts := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, " ")
}

// StringNode is a literal string expression, originating from either a bare
// word or a quoted string.
type StringNode struct {
	position *Token

	Val string
}

func (n *StringNode) Position() *Token {
	return n.position
}

func (n *StringNode) Evaluate(ctx *ExecutionContext) (*Value, error) {
	return AsValue(n.Val), nil
}

func (n *StringNode) String() string {
	if n.position != nil && n.position.Literal != "" {
		return n.position.Literal
	}
	return n.Val
}

// VectorNode is a bracketed form; by convention the first element names the
// callee.
type VectorNode struct {
	position *Token

	Elements []Node
}

func (n *VectorNode) Position() *Token {
	return n.position
}

func (n *VectorNode) String() string {
	parts := make([]string, 0, len(n.Elements))
	for _, elem := range n.Elements {
		parts = append(parts, elem.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Evaluate dispatches a bracketed form as a procedure call. The head
// element is evaluated first; a string head is resolved through the
// environment. Builtins receive the remaining elements unevaluated so they
// control their own argument evaluation, while lambdas receive the
// arguments evaluated left to right in the calling environment.
func (n *VectorNode) Evaluate(ctx *ExecutionContext) (*Value, error) {
	if len(n.Elements) == 0 {
		return nil, ctx.Error("attempted procedure call on an empty vector", n.position)
	}

	head, err := n.Elements[0].Evaluate(ctx)
	if err != nil {
		return nil, n.relocate(ctx, err)
	}
	if head.IsString() {
		name := head.Str()
		resolved, ok := ctx.Env.Get(name)
		if !ok {
			return nil, ctx.Error(fmt.Sprintf("use of undeclared variable `%s`", name), n.position)
		}
		head = resolved
	}

	switch {
	case head.IsBuiltin():
		val, err := head.Builtin().fn(ctx, n.Elements[1:])
		if err != nil {
			return nil, n.relocate(ctx, err)
		}
		return val, nil
	case head.IsLambda():
		args := make([]*Value, 0, len(n.Elements)-1)
		for _, elem := range n.Elements[1:] {
			v, err := elem.Evaluate(ctx)
			if err != nil {
				return nil, n.relocate(ctx, err)
			}
			args = append(args, v)
		}
		val, err := head.Lambda().call(ctx, args)
		if err != nil {
			return nil, n.relocate(ctx, err)
		}
		return val, nil
	default:
		return nil, ctx.Error("expression is not callable", n.position)
	}
}

// relocate re-wraps an error escaping this call with the call site's own
// location, so the diagnostic reports the outermost call rather than the
// failing inner builtin.
func (n *VectorNode) relocate(ctx *ExecutionContext, err error) error {
	var terr *Error
	if errors.As(err, &terr) {
		return ctx.OrigError(terr.OrigError, n.position)
	}
	return ctx.OrigError(err, n.position)
}

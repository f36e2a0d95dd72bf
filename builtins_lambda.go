package tart

import (
	"fmt"
	"strings"
)

// variadicSuffix marks the final parameter of a variadic lambda; the
// remaining call arguments are collected into a vector bound under the
// suffix-stripped name.
const variadicSuffix = "..."

func init() {
	RegisterBuiltin("lambda", builtinLambda)
}

// Lambda is a user-defined procedure: a parameter list, a body of
// unevaluated expressions and the environment captured at creation time.
// The captured environment is a shared reference; the lambda extends its
// lifetime.
type Lambda struct {
	parameters []string // raw names; the last may carry the "..." suffix
	variadic   bool
	body       []Node
	env        *Environment
}

// String renders a textual form suitable for diagnostics. The exact format
// is not stable.
func (l *Lambda) String() string {
	parts := make([]string, 0, len(l.body))
	for _, n := range l.body {
		parts = append(parts, n.String())
	}
	return fmt.Sprintf("[lambda [%s] %s]",
		strings.Join(l.parameters, " "), strings.Join(parts, " "))
}

// builtinLambda constructs a lambda value. It is the one builtin that never
// evaluates its arguments: the first must structurally be a bracketed
// vector of identifiers (only the last of which may carry the "..."
// suffix), and the remaining argument nodes form the body.
func builtinLambda(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) < 1 {
		return nil, ctx.Error("`lambda` expects a parameter vector as argument 1", nil)
	}
	paramsNode, ok := args[0].(*VectorNode)
	if !ok {
		return nil, ctx.Error("`lambda` expects a parameter vector as argument 1", args[0].Position())
	}
	parameters := make([]string, 0, len(paramsNode.Elements))
	variadic := false
	for i, elem := range paramsNode.Elements {
		strNode, ok := elem.(*StringNode)
		if !ok {
			return nil, ctx.Error("lambda parameters must be identifiers", elem.Position())
		}
		name := strNode.Val
		if strings.HasSuffix(name, variadicSuffix) {
			if i != len(paramsNode.Elements)-1 {
				return nil, ctx.Error(fmt.Sprintf("only the final lambda parameter may be variadic, found `%s`", name), elem.Position())
			}
			variadic = true
		}
		parameters = append(parameters, name)
	}
	return AsValue(&Lambda{
		parameters: parameters,
		variadic:   variadic,
		body:       args[1:],
		env:        ctx.Env,
	}), nil
}

// call invokes the lambda with already-evaluated arguments. A fresh
// environment is created as a child of the captured environment, the
// parameters are bound, and the body expressions evaluate in order; the
// value of the last one is the result (an empty body yields the empty
// string).
func (l *Lambda) call(ctx *ExecutionContext, args []*Value) (*Value, error) {
	maxDepth := ctx.set().Options.MaxCallDepth
	if ctx.depth+1 > maxDepth {
		return nil, ctx.Error(fmt.Sprintf("maximum call depth reached (max is %d)", maxDepth), nil)
	}

	fixed := len(l.parameters)
	if l.variadic {
		fixed--
		if len(args) < fixed {
			return nil, ctx.Error(fmt.Sprintf("expected at least %d argument(s), received %d", fixed, len(args)), nil)
		}
	} else if len(args) != fixed {
		return nil, ctx.Error(fmt.Sprintf("expected %d argument(s), received %d", fixed, len(args)), nil)
	}

	env := NewEnvironment(l.env)
	for i := 0; i < fixed; i++ {
		if err := env.Let(l.parameters[i], args[i]); err != nil {
			return nil, ctx.OrigError(err, nil)
		}
	}
	if l.variadic {
		name := strings.TrimSuffix(l.parameters[fixed], variadicSuffix)
		rest := make([]*Value, len(args)-fixed)
		copy(rest, args[fixed:])
		if err := env.Let(name, AsValue(rest)); err != nil {
			return nil, ctx.OrigError(err, nil)
		}
	}

	callCtx := ctx.withEnvironment(env)
	callCtx.depth = ctx.depth + 1

	result := emptyStringValue()
	for _, node := range l.body {
		v, err := node.Evaluate(callCtx)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

package tart

import (
	"fmt"
)

// BuiltinFunction is the calling convention for builtin procedures: the
// argument nodes arrive unevaluated together with the calling context, so
// each builtin controls its own argument evaluation. This is what allows
// `lambda` to treat its arguments structurally and keeps error locations
// precise. Lambdas use the opposite convention and receive evaluated
// values; the two are never merged.
type BuiltinFunction func(ctx *ExecutionContext, args []Node) (*Value, error)

// Builtin is a primitive procedure installed into the root environment.
// It is opaque at the value level: stringifying a builtin is an error.
type Builtin struct {
	name string
	fn   BuiltinFunction
}

// Name returns the name the builtin is bound to in the root environment.
func (b *Builtin) Name() string {
	return b.name
}

var builtinProcedures = make(map[string]*Builtin)

// RegisterBuiltin registers a new builtin procedure under the given name.
// Registering the same name twice panics.
func RegisterBuiltin(name string, fn BuiltinFunction) {
	_, existing := builtinProcedures[name]
	if existing {
		panic(fmt.Sprintf("builtin with name '%s' is already registered", name))
	}
	builtinProcedures[name] = &Builtin{
		name: name,
		fn:   fn,
	}
}

// BuiltinExists returns true if the given name is a registered builtin.
func BuiltinExists(name string) bool {
	_, existing := builtinProcedures[name]
	return existing
}

// newRootEnvironment creates the environment every document starts from:
// all registered builtins plus the `file` binding naming the executing
// source file.
func newRootEnvironment(file string) *Environment {
	root := NewEnvironment(nil)
	for name, b := range builtinProcedures {
		root.store[name] = AsValue(b)
	}
	root.store["file"] = AsValue(file)
	return root
}

// evalArguments evaluates argument nodes left to right in the calling
// environment.
func evalArguments(ctx *ExecutionContext, args []Node) ([]*Value, error) {
	vals := make([]*Value, 0, len(args))
	for _, arg := range args {
		v, err := arg.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func errArgCount(ctx *ExecutionContext, name string, want, got int) error {
	return ctx.Error(fmt.Sprintf("`%s` expects %d argument(s), received %d", name, want, got), nil)
}

func errArgType(ctx *ExecutionContext, name string, index int, want ValueKind, got *Value, pos *Token) error {
	return ctx.Error(fmt.Sprintf("`%s` expects a %s as argument %d, received a %s", name, want, index, got.Kind()), pos)
}

func init() {
	RegisterBuiltin("let", builtinLet)
	RegisterBuiltin("set", builtinSet)
	RegisterBuiltin("get", builtinGet)
}

// builtinLet binds an identifier in the current (innermost) scope and
// yields the empty string.
func builtinLet(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) != 2 {
		return nil, errArgCount(ctx, "let", 2, len(args))
	}
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	if !vals[0].IsString() {
		return nil, errArgType(ctx, "let", 1, ValueString, vals[0], args[0].Position())
	}
	if err := ctx.Env.Let(vals[0].Str(), vals[1]); err != nil {
		return nil, ctx.OrigError(err, args[0].Position())
	}
	return emptyStringValue(), nil
}

// builtinSet rebinds an identifier that is already bound in the current
// (innermost) scope and yields the empty string. Outer scopes are not
// searched: a name bound only in an enclosing scope is an error.
func builtinSet(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) != 2 {
		return nil, errArgCount(ctx, "set", 2, len(args))
	}
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	if !vals[0].IsString() {
		return nil, errArgType(ctx, "set", 1, ValueString, vals[0], args[0].Position())
	}
	if err := ctx.Env.Set(vals[0].Str(), vals[1]); err != nil {
		return nil, ctx.OrigError(err, args[0].Position())
	}
	return emptyStringValue(), nil
}

// builtinGet resolves an identifier through the scope chain.
func builtinGet(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) != 1 {
		return nil, errArgCount(ctx, "get", 1, len(args))
	}
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	if !vals[0].IsString() {
		return nil, errArgType(ctx, "get", 1, ValueString, vals[0], args[0].Position())
	}
	name := vals[0].Str()
	v, ok := ctx.Env.Get(name)
	if !ok {
		return nil, ctx.Error(fmt.Sprintf("use of undeclared variable `%s`", name), args[0].Position())
	}
	return v, nil
}

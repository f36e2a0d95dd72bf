package tart

import (
	"fmt"
	"strings"
)

func init() {
	RegisterBuiltin("string", builtinString)
	RegisterBuiltin("cat", builtinCat)
	RegisterBuiltin("join", builtinJoin)
	RegisterBuiltin("print", builtinPrint)
}

// builtinString stringifies its arguments and assembles them with the
// whitespace-aware join rule, the same rule the top-level document emitter
// uses.
func builtinString(ctx *ExecutionContext, args []Node) (*Value, error) {
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(vals))
	for i, v := range vals {
		s, err := v.Stringify()
		if err != nil {
			return nil, ctx.OrigError(err, args[i].Position())
		}
		parts = append(parts, s)
	}
	return AsValue(joinWhitespaceAware(parts)), nil
}

// builtinCat concatenates values of a single type: strings without a
// separator, vectors element-wise. Zero arguments yield the empty string.
func builtinCat(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) == 0 {
		return emptyStringValue(), nil
	}
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	switch vals[0].Kind() {
	case ValueString:
		var sb strings.Builder
		for i, v := range vals {
			if !v.IsString() {
				return nil, errArgType(ctx, "cat", i+1, ValueString, v, args[i].Position())
			}
			sb.WriteString(v.Str())
		}
		return AsValue(sb.String()), nil
	case ValueVector:
		elems := make([]*Value, 0, len(vals))
		for i, v := range vals {
			if !v.IsVector() {
				return nil, errArgType(ctx, "cat", i+1, ValueVector, v, args[i].Position())
			}
			elems = append(elems, v.Vector()...)
		}
		return AsValue(elems), nil
	default:
		return nil, ctx.Error(fmt.Sprintf("`cat` expects strings or vectors, received a %s as argument 1", vals[0].Kind()), args[0].Position())
	}
}

// builtinJoin stringifies the elements of a vector and joins them with the
// given separator. Unlike `string` it keeps empty elements and inserts the
// separator unconditionally.
func builtinJoin(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) != 2 {
		return nil, errArgCount(ctx, "join", 2, len(args))
	}
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	if !vals[0].IsString() {
		return nil, errArgType(ctx, "join", 1, ValueString, vals[0], args[0].Position())
	}
	if !vals[1].IsVector() {
		return nil, errArgType(ctx, "join", 2, ValueVector, vals[1], args[1].Position())
	}
	elems := vals[1].Vector()
	parts := make([]string, 0, len(elems))
	for _, elem := range elems {
		s, err := elem.Stringify()
		if err != nil {
			return nil, ctx.OrigError(err, args[1].Position())
		}
		parts = append(parts, s)
	}
	return AsValue(strings.Join(parts, vals[0].Str())), nil
}

// builtinPrint stringifies its arguments, drops the empty ones, joins the
// rest with single spaces and emits one line to the print sink. It is a
// debugging aid and deliberately bypasses the whitespace-aware join rule
// used for document assembly.
func builtinPrint(ctx *ExecutionContext, args []Node) (*Value, error) {
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(vals))
	for i, v := range vals {
		s, err := v.Stringify()
		if err != nil {
			return nil, ctx.OrigError(err, args[i].Position())
		}
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	if _, err := fmt.Fprintln(ctx.printOutput(), strings.Join(parts, " ")); err != nil {
		return nil, ctx.OrigError(err, nil)
	}
	return emptyStringValue(), nil
}

package tart

func init() {
	RegisterBuiltin("vector", builtinVector)
	RegisterBuiltin("map", builtinMap)
}

// builtinVector evaluates its arguments and produces a vector of the
// results, preserving order. The vector is created whole and never mutated
// afterwards.
func builtinVector(ctx *ExecutionContext, args []Node) (*Value, error) {
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	return AsValue(vals), nil
}

// builtinMap invokes a lambda once per element of a vector and produces the
// vector of results. The invocations happen in the calling environment, in
// element order.
func builtinMap(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) != 2 {
		return nil, errArgCount(ctx, "map", 2, len(args))
	}
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	if !vals[0].IsLambda() {
		return nil, errArgType(ctx, "map", 1, ValueLambda, vals[0], args[0].Position())
	}
	if !vals[1].IsVector() {
		return nil, errArgType(ctx, "map", 2, ValueVector, vals[1], args[1].Position())
	}
	fn := vals[0].Lambda()
	elems := vals[1].Vector()
	out := make([]*Value, 0, len(elems))
	for _, elem := range elems {
		res, err := fn.call(ctx, []*Value{elem})
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return AsValue(out), nil
}

package tart

import (
	"fmt"
	"io"
)

func init() {
	RegisterBuiltin("run", builtinRun)
}

// builtinRun reads another tart document and executes it against the
// current environment, so bindings introduced by the included document
// persist in the caller. This is the module mechanism: only the `file`
// binding is saved and restored around the inclusion, pointing at the
// included document's canonical absolute path for its duration. Paths are
// resolved relative to the directory of the current `file`.
func builtinRun(ctx *ExecutionContext, args []Node) (*Value, error) {
	if len(args) != 1 {
		return nil, errArgCount(ctx, "run", 1, len(args))
	}
	vals, err := evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	if !vals[0].IsString() {
		return nil, errArgType(ctx, "run", 1, ValueString, vals[0], args[0].Position())
	}

	root := ctx.Env.root()
	current, ok := root.Get("file")
	if !ok {
		return nil, ctx.Error("use of undeclared variable `file`", args[0].Position())
	}
	if !current.IsString() {
		return nil, ctx.Error(fmt.Sprintf("`run` expects the `file` variable to be a string, received a %s", current.Kind()), args[0].Position())
	}

	set := ctx.set()
	resolved := set.resolveFilename(current.Str(), vals[0].Str())
	canonical, err := canonicalPath(resolved)
	if err != nil {
		return nil, ctx.OrigError(err, args[0].Position())
	}

	rd, err := set.loader.Get(canonical)
	if err != nil {
		return nil, ctx.OrigError(err, args[0].Position())
	}
	buf, err := io.ReadAll(rd)
	if err != nil {
		return nil, ctx.OrigError(err, args[0].Position())
	}

	tpl, err := newTemplate(set, canonical, string(buf))
	if err != nil {
		return nil, err
	}
	ctx.Logf("running included document %s", canonical)

	// Override `file` for the included document, restore the caller's
	// binding afterwards.
	root.store["file"] = AsValue(canonical)
	defer func() {
		root.store["file"] = current
	}()

	runCtx := ctx.withTemplate(tpl)
	for _, node := range tpl.root.Nodes {
		if _, err := node.Evaluate(runCtx); err != nil {
			return nil, err
		}
	}
	return emptyStringValue(), nil
}

package tart

import (
	"errors"
	"fmt"
	"io"
)

// Environment is a lexically scoped mapping from names to values.
// Environments form a tree rooted at the builtin root environment; a child
// environment is created per lambda invocation with the lambda's captured
// environment as its parent, and closures keep their captured parent alive.
type Environment struct {
	outer *Environment
	store map[string]*Value
}

// NewEnvironment creates an empty scope whose lookups fall back to outer.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		outer: outer,
		store: make(map[string]*Value),
	}
}

// Let binds name to value in this scope. Rebinding a name that is already
// bound in this same scope is an error; shadowing an outer scope is not.
func (e *Environment) Let(name string, value *Value) error {
	if _, existing := e.store[name]; existing {
		return fmt.Errorf("redeclaration of variable `%s`", name)
	}
	e.store[name] = value
	return nil
}

// Set overwrites an existing binding. Only this scope is searched: tart's
// `set` does not walk outer scopes, so setting a name that is bound only in
// an enclosing scope is an error.
func (e *Environment) Set(name string, value *Value) error {
	if _, existing := e.store[name]; !existing {
		return fmt.Errorf("use of undeclared variable `%s`", name)
	}
	e.store[name] = value
	return nil
}

// Get resolves name in this scope, recursing into outer scopes on a miss.
func (e *Environment) Get(name string) (*Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// root returns the outermost scope of the chain, which holds the builtin
// bindings and the `file` binding.
func (e *Environment) root() *Environment {
	for e.outer != nil {
		e = e.outer
	}
	return e
}

// ExecutionContext holds the runtime state during document evaluation.
//
// Builtins receive this in their function. The context is copied with a
// replacement environment for every lambda invocation, while the underlying
// set (options, loader, logger, print sink) stays shared.
type ExecutionContext struct {
	// The template being executed (provides config, loader and Set access).
	template *Template

	// Tracks the dynamic lambda call depth; errors if exceeding
	// Options.MaxCallDepth.
	depth int

	// Env is the environment evaluation currently resolves names against.
	Env *Environment
}

func newExecutionContext(tpl *Template, env *Environment) *ExecutionContext {
	return &ExecutionContext{
		template: tpl,
		Env:      env,
	}
}

// withEnvironment returns a copy of the context that evaluates against env.
func (ctx *ExecutionContext) withEnvironment(env *Environment) *ExecutionContext {
	newctx := *ctx
	newctx.Env = env
	return &newctx
}

// withTemplate returns a copy of the context whose diagnostics default to
// the given template. Used by `run`, which executes an included document
// against the caller's environment.
func (ctx *ExecutionContext) withTemplate(tpl *Template) *ExecutionContext {
	newctx := *ctx
	newctx.template = tpl
	return &newctx
}

func (ctx *ExecutionContext) set() *Set {
	return ctx.template.set
}

func (ctx *ExecutionContext) printOutput() io.Writer {
	return ctx.template.set.printOutput
}

func (ctx *ExecutionContext) Error(msg string, token *Token) error {
	return ctx.OrigError(errors.New(msg), token)
}

func (ctx *ExecutionContext) OrigError(err error, token *Token) error {
	filename := ctx.template.name
	var line, col int
	if token != nil {
		filename = token.Filename
		line = token.Line
		col = token.Col
	}
	return &Error{
		Filename:  filename,
		Line:      line,
		Column:    col,
		Token:     token,
		Sender:    "execution",
		OrigError: err,
	}
}

// Logf emits a debug message through the set's structured logger. The
// default logger discards everything; install one with Set.SetLogger.
func (ctx *ExecutionContext) Logf(format string, args ...any) {
	ctx.template.set.logger.Sugar().Debugf(format, args...)
}

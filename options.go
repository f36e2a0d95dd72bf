package tart

// defaultMaxCallDepth limits the maximum depth of dynamic lambda calls.
// This prevents infinite recursion (e.g., a lambda calling itself without
// a base case) from causing a stack overflow. When a lambda is called,
// depth in ExecutionContext is incremented; if it exceeds the limit, an
// error is returned. The limit of 1000 allows for reasonable nesting while
// protecting against runaway recursion.
const defaultMaxCallDepth = 1000

// Options allow you to change the behavior of the tart runtime.
type Options struct {
	// MaxCallDepth bounds the dynamic lambda call depth.
	MaxCallDepth int
}

func newOptions() *Options {
	return &Options{
		MaxCallDepth: defaultMaxCallDepth,
	}
}

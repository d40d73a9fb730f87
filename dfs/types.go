// This file declares the options, result type, and sentinel errors for DFS.

package dfs

import "errors"

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange is returned when the start index is invalid.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable parts of a traversal.
type Options struct {
	// OnVisit is called when a vertex is recorded, in visit order.
	// Returning an error aborts the traversal and propagates the error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with a no-op visit hook.
func DefaultOptions() Options {
	return Options{OnVisit: func(int) error { return nil }}
}

// WithOnVisit registers a per-vertex callback; a nil fn is ignored.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists the visited vertices in visit sequence,
	// starting with the start vertex.
	Order []int

	// Visited marks reachability: Visited[v] is true iff v appears in Order.
	Visited []bool
}

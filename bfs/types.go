// This file declares the options, result type, and sentinel errors for BFS.

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start index is invalid.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrNoPath is returned by PathTo for an unreached destination.
	ErrNoPath = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable parts of a traversal.
type Options struct {
	// OnVisit is called when a vertex is dequeued and recorded.
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

// Result holds the outcome of a traversal:
//   - Order: vertices recorded in dequeue sequence.
//   - Depth: hop distance from the start, -1 when unreached.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
// Returns ErrNoPath when dest was not reached (or is out of range).
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, dest)
	}

	// Walk parent links back to the root, then reverse.
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

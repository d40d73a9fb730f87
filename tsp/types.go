package tsp

import "errors"

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("tsp: graph is nil")

	// ErrTooFewVertices is returned when the graph has fewer than two
	// vertices; no closed tour exists.
	ErrTooFewVertices = errors.New("tsp: need at least two vertices")

	// ErrIncompleteGraph is returned when some ordered pair of distinct
	// vertices is not adjacent; exhaustive search requires completeness.
	ErrIncompleteGraph = errors.New("tsp: graph is not complete")
)

// Result is the outcome of an exact tour search.
type Result struct {
	// Tour lists the vertices in visiting order, starting and ending at
	// vertex 0, so len(Tour) == VertexCount()+1.
	Tour []int

	// Cost is the sum of the directed edge weights along Tour.
	Cost int64
}

// This file declares the Graph type, its construction options,
// and the sentinel errors shared by all core operations.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex argument outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a non-positive edge weight, or a non-unit
	// weight supplied to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrEdgeNotFound indicates a weight query on an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeVertexCount indicates NewWithVertices(n) with n < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")
)

// Option configures a Graph before its first use.
type Option func(*Graph)

// WithWeighted marks the graph as weighted: edges carry caller-supplied
// positive weights instead of the implicit unit weight.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// Graph is a directed graph over contiguous integer vertex indices,
// stored as a dense adjacency matrix.
//
// The zero cell value 0 means "no edge"; any positive value is an edge
// weight (always 1 on unweighted graphs). The matrix is square at all
// times: adjacency has numVertices rows of numVertices cells each.
//
// Graph performs no internal locking; see the package documentation.
type Graph struct {
	numVertices int
	weighted    bool
	adjacency   [][]int64
}

// New returns an empty Graph (zero vertices, no edges).
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewWithVertices returns a Graph with n isolated vertices.
// Returns ErrNegativeVertexCount when n < 0.
// Complexity: O(n²) for the zeroed matrix.
func NewWithVertices(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	g := New(opts...)
	g.numVertices = n
	g.adjacency = make([][]int64, n)
	for i := range g.adjacency {
		g.adjacency[i] = make([]int64, n)
	}

	return g, nil
}

// validVertex reports whether v is a legal index for the current graph.
func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < g.numVertices
}

// File: methods_vertices.go
// Role: vertex lifecycle — append, remove-with-renumbering, count, reset.

package core

// AddVertex appends one vertex with no incident edges, growing the matrix
// by one row and one column. The new vertex's index is the previous
// VertexCount().
// Complexity: O(V) amortized.
func (g *Graph) AddVertex() {
	g.numVertices++

	// New row, already sized for the new column count.
	g.adjacency = append(g.adjacency, make([]int64, g.numVertices))

	// One extra zero column for every existing row.
	for i := 0; i < g.numVertices-1; i++ {
		g.adjacency[i] = append(g.adjacency[i], 0)
	}
}

// RemoveVertex deletes vertex v together with its row and column.
// Every vertex with an index greater than v is renumbered down by one;
// callers relying on stable identity must track that shift themselves.
// Returns ErrVertexOutOfRange (graph unchanged) for an invalid v.
// Complexity: O(V²).
func (g *Graph) RemoveVertex(v int) error {
	if !g.validVertex(v) {
		return ErrVertexOutOfRange
	}

	// Drop row v, then cell v of every remaining row.
	g.adjacency = append(g.adjacency[:v], g.adjacency[v+1:]...)
	for i, row := range g.adjacency {
		g.adjacency[i] = append(row[:v], row[v+1:]...)
	}

	g.numVertices--

	return nil
}

// VertexCount returns the current number of vertices.
func (g *Graph) VertexCount() int { return g.numVertices }

// Weighted reports whether the graph was constructed with WithWeighted().
func (g *Graph) Weighted() bool { return g.weighted }

// Clear resets the graph to zero vertices and an empty matrix.
// The weighted flag is preserved and the graph remains usable.
func (g *Graph) Clear() {
	g.numVertices = 0
	g.adjacency = nil
}

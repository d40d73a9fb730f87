// File: methods_edges.go
// Role: edge mutation and weight queries.

package core

// AddEdge records the directed edge from→to with the implicit unit weight.
// Returns ErrVertexOutOfRange (graph unchanged) when either index is invalid.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int) error {
	if !g.validVertex(from) || !g.validVertex(to) {
		return ErrVertexOutOfRange
	}

	g.adjacency[from][to] = 1

	return nil
}

// AddWeightedEdge records the directed edge from→to with weight w.
//
// The weight must be positive; on an unweighted graph only the unit
// weight 1 is accepted. Violations return ErrBadWeight with the graph
// unchanged.
// Complexity: O(1).
func (g *Graph) AddWeightedEdge(from, to int, w int64) error {
	if !g.validVertex(from) || !g.validVertex(to) {
		return ErrVertexOutOfRange
	}
	if w <= 0 {
		return ErrBadWeight
	}
	if !g.weighted && w != 1 {
		return ErrBadWeight
	}

	g.adjacency[from][to] = w

	return nil
}

// AddUndirectedEdge records both directed edges a→b and b→a with weight w.
// This is a convenience over two AddWeightedEdge calls: the pair is NOT
// kept symmetric after later one-sided edits.
// Complexity: O(1).
func (g *Graph) AddUndirectedEdge(a, b int, w int64) error {
	if !g.validVertex(a) || !g.validVertex(b) {
		return ErrVertexOutOfRange
	}
	if w <= 0 || (!g.weighted && w != 1) {
		return ErrBadWeight
	}

	g.adjacency[a][b] = w
	g.adjacency[b][a] = w

	return nil
}

// RemoveEdge clears the directed edge from→to. Removing an edge that does
// not exist is a no-op, not an error.
// Returns ErrVertexOutOfRange when either index is invalid.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) error {
	if !g.validVertex(from) || !g.validVertex(to) {
		return ErrVertexOutOfRange
	}

	g.adjacency[from][to] = 0

	return nil
}

// EdgeWeight returns the stored weight of the directed edge from→to.
// Returns ErrEdgeNotFound when the cell holds 0 (no edge), or
// ErrVertexOutOfRange for invalid indices.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to int) (int64, error) {
	if !g.validVertex(from) || !g.validVertex(to) {
		return 0, ErrVertexOutOfRange
	}
	if g.adjacency[from][to] == 0 {
		return 0, ErrEdgeNotFound
	}

	return g.adjacency[from][to], nil
}

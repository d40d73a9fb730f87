// File: methods_adjacent.go
// Role: adjacency queries — IsAdjacent, Neighbors, Degree.
//
// Determinism:
//   - Neighbors returns out-neighbors in ascending index order. Higher-level
//     algorithms (traversal tie-breaks, Hamiltonian enumeration order) depend
//     on this ordering.

package core

// neighborReserve is the initial capacity for neighbor slices.
const neighborReserve = 8

// IsAdjacent reports whether the directed edge v1→v2 exists, i.e. whether
// the stored cell is non-zero.
// Returns ErrVertexOutOfRange for invalid indices.
// Complexity: O(1).
func (g *Graph) IsAdjacent(v1, v2 int) (bool, error) {
	if !g.validVertex(v1) || !g.validVertex(v2) {
		return false, ErrVertexOutOfRange
	}

	return g.adjacency[v1][v2] != 0, nil
}

// Neighbors returns the out-neighbors of v in ascending index order:
// every j with a non-zero cell [v][j], self-loop included.
// An isolated vertex yields an empty slice, not an error.
// Complexity: O(V).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.validVertex(v) {
		return nil, ErrVertexOutOfRange
	}

	neighbors := make([]int, 0, neighborReserve)
	for j := 0; j < g.numVertices; j++ {
		if g.adjacency[v][j] != 0 {
			neighbors = append(neighbors, j)
		}
	}

	return neighbors, nil
}

// Degree returns the out-degree of v: the number of non-zero cells in row v.
// Complexity: O(V).
func (g *Graph) Degree(v int) (int, error) {
	if !g.validVertex(v) {
		return 0, ErrVertexOutOfRange
	}

	count := 0
	for _, w := range g.adjacency[v] {
		if w != 0 {
			count++
		}
	}

	return count, nil
}

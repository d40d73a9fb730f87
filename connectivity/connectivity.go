package connectivity

import (
	"fmt"

	"github.com/avlasov/densegraph/core"
	"github.com/avlasov/densegraph/dfs"
)

// IsConnected reports weak connectivity: true iff some start vertex's DFS
// reaches every vertex. The empty graph is not connected.
//
// Steps:
//  1. Validate g.
//  2. For each candidate start, run a DFS; succeed on the first full cover.
//
// Complexity: O(V³) worst case.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.VertexCount()
	for i := 0; i < n; i++ {
		res, err := dfs.DFS(g, i)
		if err != nil {
			return false, fmt.Errorf("connectivity: DFS(%d): %w", i, err)
		}
		if len(res.Order) == n {
			return true, nil
		}
	}

	// Covers the empty graph: no start vertex exists, so no cover exists.
	return false, nil
}

// IsStronglyConnected reports whether every vertex's DFS reaches every
// vertex. Vacuously true for the empty graph, matching the universal
// quantifier (contrast IsConnected, whose existential reading is false).
//
// Complexity: O(V³) worst case.
func IsStronglyConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.VertexCount()
	for i := 0; i < n; i++ {
		res, err := dfs.DFS(g, i)
		if err != nil {
			return false, fmt.Errorf("connectivity: DFS(%d): %w", i, err)
		}
		if len(res.Order) < n {
			return false, nil
		}
	}

	return true, nil
}

// AreStronglyConnected reports whether u and v lie on a common cycle of
// reachability: v is reachable from u AND u is reachable from v.
// Returns core.ErrVertexOutOfRange for invalid indices.
//
// Complexity: O(V²) — two DFS runs.
func AreStronglyConnected(g *core.Graph, u, v int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.VertexCount()
	if u < 0 || u >= n || v < 0 || v >= n {
		return false, core.ErrVertexOutOfRange
	}

	fromU, err := dfs.DFS(g, u)
	if err != nil {
		return false, fmt.Errorf("connectivity: DFS(%d): %w", u, err)
	}
	if !fromU.Visited[v] {
		return false, nil
	}

	fromV, err := dfs.DFS(g, v)
	if err != nil {
		return false, fmt.Errorf("connectivity: DFS(%d): %w", v, err)
	}

	return fromV.Visited[u], nil
}

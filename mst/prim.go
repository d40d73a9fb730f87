package mst

import (
	"fmt"
	"math"

	"github.com/avlasov/densegraph/connectivity"
	"github.com/avlasov/densegraph/core"
)

// keyUnset marks a vertex with no known edge into the growing tree yet.
const keyUnset = int64(math.MaxInt64)

// Prim computes a minimum spanning tree of g and returns it as a new
// weighted Graph with the same vertex count and exactly V-1 undirected
// edges.
//
// Steps:
//  1. Validate: non-nil and weighted (ErrInvalidGraph), connected
//     (ErrDisconnected). A single vertex yields the trivial edgeless tree.
//  2. Initialize key[] to +∞ except key[0] = 0; parent[] to -1.
//  3. V times: select the unvisited vertex u with the minimum key (first
//     minimal index wins), mark it in-tree, record the edge parent[u]—u
//     (skipped for the root), and relax every unvisited out-neighbor v
//     whose direct edge weight beats key[v].
//  4. Materialize the recorded edges into a fresh weighted Graph.
//
// Complexity: O(V²).
func Prim(g *core.Graph) (*core.Graph, error) {
	// 1. Preconditions.
	if g == nil || !g.Weighted() {
		return nil, ErrInvalidGraph
	}

	connected, err := connectivity.IsConnected(g)
	if err != nil {
		return nil, fmt.Errorf("mst: connectivity guard: %w", err)
	}
	if !connected {
		return nil, ErrDisconnected
	}

	n := g.VertexCount()

	// 2. Keys, parents, membership.
	key := make([]int64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for i := range key {
		key[i] = keyUnset
		parent[i] = -1
	}
	key[0] = 0

	// 3. Grow the tree one vertex per round.
	for round := 0; round < n; round++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u == -1 || key[v] < key[u]) {
				u = v
			}
		}
		// Connectivity is weak for directed inputs; the tree can still
		// strand vertices when edges only point one way.
		if key[u] == keyUnset {
			return nil, ErrDisconnected
		}
		inTree[u] = true

		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("mst: Neighbors(%d): %w", u, err)
		}
		for _, v := range nbs {
			if inTree[v] || v == u {
				continue
			}
			w, err := g.EdgeWeight(u, v)
			if err != nil {
				return nil, fmt.Errorf("mst: EdgeWeight(%d,%d): %w", u, v, err)
			}
			if w < key[v] {
				key[v] = w
				parent[v] = u
			}
		}
	}

	// 4. Materialize the tree.
	tree, err := core.NewWithVertices(n, core.WithWeighted())
	if err != nil {
		return nil, fmt.Errorf("mst: allocate result: %w", err)
	}
	for v := 0; v < n; v++ {
		if parent[v] < 0 {
			continue // root
		}
		if err = tree.AddUndirectedEdge(parent[v], v, key[v]); err != nil {
			return nil, fmt.Errorf("mst: record edge %d-%d: %w", parent[v], v, err)
		}
	}

	return tree, nil
}

package connectivity

import (
	"fmt"

	"github.com/avlasov/densegraph/core"
)

// kahnPeel runs Kahn's zero-in-degree peel and returns the removal order.
//
// Steps:
//  1. Compute the in-degree of every vertex from the out-neighbor rows.
//  2. Seed a FIFO queue with all zero-in-degree vertices, ascending.
//  3. Repeatedly dequeue a vertex, append it to the order, and decrement
//     each out-neighbor's in-degree, enqueueing any that reach zero.
//
// A self-loop pins its vertex's in-degree at ≥ 1, so the vertex is never
// peeled and always registers as part of a cycle.
func kahnPeel(g *core.Graph) ([]int, error) {
	n := g.VertexCount()
	inDegree := make([]int, n)

	// 1. In-degrees via one pass over all adjacency rows.
	for u := 0; u < n; u++ {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("connectivity: Neighbors(%d): %w", u, err)
		}
		for _, v := range nbs {
			inDegree[v]++
		}
	}

	// 2. Seed with sources.
	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if inDegree[u] == 0 {
			queue = append(queue, u)
		}
	}

	// 3. Peel.
	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("connectivity: Neighbors(%d): %w", u, err)
		}
		for _, v := range nbs {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return order, nil
}

// HasCycle reports whether g contains a directed cycle, by Kahn's
// algorithm: a cycle exists iff the zero-in-degree peel removes fewer
// than VertexCount vertices. A single vertex without a self-loop is
// cycle-free; any self-loop is a cycle.
//
// Complexity: O(V²).
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	order, err := kahnPeel(g)
	if err != nil {
		return false, err
	}

	return len(order) != g.VertexCount(), nil
}

// TopologicalOrder returns a topological ordering of g — the Kahn removal
// order, with ascending-index tie-breaking among simultaneous sources.
// Returns ErrCycleDetected when g is not a DAG.
//
// Complexity: O(V²).
func TopologicalOrder(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	order, err := kahnPeel(g)
	if err != nil {
		return nil, err
	}
	if len(order) != g.VertexCount() {
		return nil, ErrCycleDetected
	}

	return order, nil
}

package bfs

import (
	"fmt"

	"github.com/avlasov/densegraph/core"
)

// BFS performs a breadth-first walk on g starting at start.
//
// Steps:
//  1. Validate g and the start index.
//  2. Mark start visited and enqueue it (mark-on-enqueue keeps every
//     vertex out of the queue after its first sighting).
//  3. Dequeue the front, record it, then enqueue its unvisited neighbors
//     in ascending index order, marking each as it enters the queue.
//  4. Repeat until the queue drains.
//
// Returns visit order, hop depths, and parent links over the reachable
// component, or the hook error that aborted the walk.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	// 2. Seed the queue; the start is marked on enqueue like every vertex.
	visited := make([]bool, n)
	visited[start] = true
	res.Depth[start] = 0
	queue := make([]int, 0, n)
	queue = append(queue, start)

	// 3-4. Main loop: record in dequeue order.
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, v)
		if err := o.OnVisit(v); err != nil {
			return res, fmt.Errorf("bfs: OnVisit hook for %d: %w", v, err)
		}

		nbs, err := g.Neighbors(v)
		if err != nil {
			return res, fmt.Errorf("bfs: Neighbors(%d): %w", v, err)
		}
		for _, nb := range nbs {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			res.Depth[nb] = res.Depth[v] + 1
			res.Parent[nb] = v
			queue = append(queue, nb)
		}
	}

	return res, nil
}

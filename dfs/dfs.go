package dfs

import (
	"fmt"

	"github.com/avlasov/densegraph/core"
)

// DFS performs a depth-first walk on g starting at start.
//
// Steps:
//  1. Validate g and the start index.
//  2. Push start onto an explicit stack.
//  3. Pop the top; if unvisited, mark it, record it, and push its
//     unvisited neighbors in reverse index order, so the lowest-index
//     neighbor surfaces first. This tie-break is part of the contract.
//  4. Repeat until the stack drains.
//
// Returns the visit order over the reachable component, or the hook error
// that aborted the walk.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
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
		Order:   make([]int, 0, n),
		Visited: make([]bool, n),
	}

	// 2. Seed the stack.
	stack := make([]int, 0, n)
	stack = append(stack, start)

	// 3-4. Main loop.
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if res.Visited[v] {
			continue
		}
		res.Visited[v] = true
		res.Order = append(res.Order, v)

		if err := o.OnVisit(v); err != nil {
			return res, fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}

		// Neighbors come back ascending; push them reversed so the
		// smallest index is popped next.
		nbs, err := g.Neighbors(v)
		if err != nil {
			return res, fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if !res.Visited[nbs[i]] {
				stack = append(stack, nbs[i])
			}
		}
	}

	return res, nil
}

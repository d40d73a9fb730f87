package hamilton

import (
	"fmt"

	"github.com/avlasov/densegraph/connectivity"
	"github.com/avlasov/densegraph/core"
)

// searcher carries the mutable state of one backtracking enumeration.
type searcher struct {
	graph     *core.Graph
	n         int
	path      []int
	visited   []bool
	cycles    [][]int
	firstOnly bool // stop after the first completed cycle
}

// FindCycles enumerates all Hamiltonian cycles of g.
//
// Steps:
//  1. Validate g and handle the single-vertex cases.
//  2. Fast rejection: a graph that is not weakly connected, or has no
//     directed cycle at all, cannot have a Hamiltonian cycle.
//  3. For each start vertex s ascending: mark s, push it on the path, and
//     extend recursively through unvisited out-neighbors; whenever the
//     path covers all V vertices and the tail is adjacent back to s,
//     record path+[s].
//
// Each returned cycle has length V+1 with equal first and last elements.
// The same geometric cycle appears once per (start vertex, direction)
// that discovers it; see the package documentation.
func FindCycles(g *core.Graph) ([][]int, error) {
	return findCycles(g, false)
}

// HasCycle reports whether g has at least one Hamiltonian cycle.
// Equivalent to len(FindCycles(g)) > 0, but stops at the first hit.
func HasCycle(g *core.Graph) (bool, error) {
	cycles, err := findCycles(g, true)
	if err != nil {
		return false, err
	}

	return len(cycles) > 0, nil
}

func findCycles(g *core.Graph, firstOnly bool) ([][]int, error) {
	// 1. Validate and dispatch trivial sizes.
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		loop, err := g.IsAdjacent(0, 0)
		if err != nil {
			return nil, fmt.Errorf("hamilton: IsAdjacent(0,0): %w", err)
		}
		if loop {
			return [][]int{{0, 0}}, nil
		}

		return nil, nil
	}

	// 2. Cheap necessary conditions before the exponential search.
	connected, err := connectivity.IsConnected(g)
	if err != nil {
		return nil, fmt.Errorf("hamilton: connectivity guard: %w", err)
	}
	if !connected {
		return nil, nil
	}
	cyclic, err := connectivity.HasCycle(g)
	if err != nil {
		return nil, fmt.Errorf("hamilton: cycle guard: %w", err)
	}
	if !cyclic {
		return nil, nil
	}

	// 3. Backtracking from every start vertex.
	s := &searcher{
		graph:     g,
		n:         n,
		path:      make([]int, 0, n),
		visited:   make([]bool, n),
		firstOnly: firstOnly,
	}
	for start := 0; start < n; start++ {
		s.visited[start] = true
		s.path = append(s.path, start)

		if err = s.extend(start, start); err != nil {
			return nil, err
		}

		s.path = s.path[:0]
		s.visited[start] = false

		if firstOnly && len(s.cycles) > 0 {
			break
		}
	}

	return s.cycles, nil
}

// extend tries every unvisited out-neighbor of current, closing the cycle
// back to start once the path spans all vertices.
func (s *searcher) extend(start, current int) error {
	if len(s.path) == s.n {
		adj, err := s.graph.IsAdjacent(current, start)
		if err != nil {
			return fmt.Errorf("hamilton: IsAdjacent(%d,%d): %w", current, start, err)
		}
		if adj {
			cycle := make([]int, s.n+1)
			copy(cycle, s.path)
			cycle[s.n] = start
			s.cycles = append(s.cycles, cycle)
		}

		return nil
	}

	nbs, err := s.graph.Neighbors(current)
	if err != nil {
		return fmt.Errorf("hamilton: Neighbors(%d): %w", current, err)
	}
	for _, nb := range nbs {
		if s.visited[nb] {
			continue
		}

		s.visited[nb] = true
		s.path = append(s.path, nb)

		if err = s.extend(start, nb); err != nil {
			return err
		}

		s.path = s.path[:len(s.path)-1]
		s.visited[nb] = false

		if s.firstOnly && len(s.cycles) > 0 {
			return nil
		}
	}

	return nil
}

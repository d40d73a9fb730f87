package tsp

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/avlasov/densegraph/connectivity"
	"github.com/avlasov/densegraph/core"
)

// Solve finds a minimum-cost closed tour of g by brute force.
//
// Vertex 0 is fixed as the anchor: every candidate tour starts and ends
// there, which collapses the (V-1)! rotations of each cyclic tour into a
// single permutation of vertices 1..V-1. Permutations are enumerated in
// lexicographic order and a strictly cheaper tour is required to displace
// the incumbent, so among equal-cost optima the lexicographically
// smallest tour wins.
//
// Errors: ErrGraphNil, ErrTooFewVertices, ErrIncompleteGraph.
//
// Complexity: O(V·(V-1)!) time, O(V) extra memory.
func Solve(g *core.Graph) (Result, error) {
	// 1. Validate the input.
	if g == nil {
		return Result{}, ErrGraphNil
	}
	n := g.VertexCount()
	if n < 2 {
		return Result{}, ErrTooFewVertices
	}
	complete, err := connectivity.IsComplete(g)
	if err != nil {
		return Result{}, fmt.Errorf("tsp: completeness guard: %w", err)
	}
	if !complete {
		return Result{}, ErrIncompleteGraph
	}

	// 2. Two vertices admit exactly one tour: 0 → 1 → 0.
	if n == 2 {
		out := weight(g, 0, 1)
		back := weight(g, 1, 0)
		return Result{Tour: []int{0, 1, 0}, Cost: out + back}, nil
	}

	// 3. Enumerate permutations of {1..n-1} lexicographically. The
	//    generator hands out permutations of {0..n-2}; shifting each
	//    element by one maps them onto the non-anchor vertices.
	gen := combin.NewPermutationGenerator(n-1, n-1)
	perm := make([]int, n-1)

	best := Result{Cost: -1}
	tour := make([]int, 0, n+1)
	for gen.Next() {
		gen.Permutation(perm)

		// 4. Cost the closed tour 0, perm+1 …, 0 under directed weights.
		cost := int64(0)
		prev := 0
		for _, p := range perm {
			v := p + 1
			cost += weight(g, prev, v)
			prev = v
		}
		cost += weight(g, prev, 0)

		// 5. Strict improvement only, so the first optimum is kept.
		if best.Cost >= 0 && cost >= best.Cost {
			continue
		}
		tour = tour[:0]
		tour = append(tour, 0)
		for _, p := range perm {
			tour = append(tour, p+1)
		}
		tour = append(tour, 0)
		best = Result{Tour: append([]int(nil), tour...), Cost: cost}
	}
	return best, nil
}

// weight reads the u→v edge weight; completeness was checked up front,
// so the lookup cannot fail.
func weight(g *core.Graph, u, v int) int64 {
	w, _ := g.EdgeWeight(u, v)
	return w
}

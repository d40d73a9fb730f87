// Package tsp solves the traveling salesman problem exactly on a complete
// core.Graph by exhaustive permutation search.
//
// What:
//
//   - Solve(g): fix vertex 0 as the tour start/end, enumerate every
//     permutation of the remaining V-1 vertices in lexicographic order
//     (gonum's stat/combin generator), sum the directed edge weights of
//     each closed tour 0, p1, …, p(V-1), 0, and return the cheapest. Ties
//     go to the first minimal permutation encountered, i.e. the
//     lexicographically smallest optimal tour.
//
// Directed weights are respected: the u→v and v→u cells may differ, so
// a tour and its reversal can cost differently.
//
// Preconditions:
//
//   - g must have at least 2 vertices (ErrTooFewVertices).
//   - g must be complete — every ordered pair of distinct vertices
//     adjacent (ErrIncompleteGraph). Unweighted complete graphs are legal;
//     every edge then costs 1.
//
// Complexity:
//
//   - Time:   O(V · (V-1)!) — explicitly exponential; the caller bounds V.
//   - Memory: O(V) — one permutation buffer, no table of tours.
package tsp

// Package densegraph is a dense-graph algorithms engine: a mutable directed
// graph backed by an adjacency matrix, together with the classic algorithms
// that matter on small, dense instances.
//
// What you get:
//
//	core/         - the Graph store: integer vertex indices, V×V matrix,
//	                vertex/edge mutation, adjacency queries, deep clone
//	bfs/, dfs/    - deterministic traversals over the reachable set
//	connectivity/ - weak & strong connectivity, Kahn cycle detection,
//	                topological order, completeness check
//	hamilton/     - exhaustive Hamiltonian cycle enumeration (backtracking)
//	mst/          - Prim's minimum spanning tree
//	tsp/          - exact traveling salesman by permutation search
//
// Design constraints, deliberately:
//
//   - Adjacency-matrix storage: O(V²) memory, O(1) edge lookup. This engine
//     targets small dense graphs, not sparse or very large ones.
//   - Vertices are contiguous indices 0..V-1; removing vertex k renumbers
//     every higher index down by one.
//   - Exact search only: hamilton and tsp are exponential by contract.
//     The caller bounds V.
//   - Single-threaded: no internal locking. Callers that share a Graph
//     across goroutines must serialize access themselves.
//
// Every public entry point bounds-checks its vertex arguments and reports
// violations as sentinel errors (matched with errors.Is); no operation
// panics on user input or leaves the graph in a partially mutated state.
package densegraph

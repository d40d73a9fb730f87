// Package core defines the Graph type: a mutable directed graph backed by a
// dense V×V adjacency matrix, addressed by integer vertex indices 0..V-1.
//
// What:
//
//   - Construction: New() for an empty graph, NewWithVertices(n) for n
//     isolated vertices; WithWeighted() enables positive edge weights.
//   - Mutation: AddVertex, RemoveVertex (renumbering), AddEdge,
//     AddWeightedEdge, AddUndirectedEdge, RemoveEdge, Clear.
//   - Queries: VertexCount, Weighted, IsAdjacent, EdgeWeight, Neighbors,
//     Degree, Clone, String.
//
// Representation:
//
//	adjacency[u][v] == 0   no edge u→v
//	adjacency[u][v] > 0    edge u→v with that weight (1 when unweighted)
//	adjacency[v][v] > 0    self-loop on v
//
// The matrix is always exactly VertexCount×VertexCount; every mutation that
// changes the vertex count resizes all rows and columns before returning, so
// a ragged matrix is never observable. The graph is directed: undirected
// behavior is a caller convention, normally via AddUndirectedEdge, and is not
// re-enforced after later one-sided edits.
//
// Removing vertex k shifts every index above k down by one. Callers that
// need stable vertex identity across removals must track the renumbering.
//
// Errors:
//
//	ErrVertexOutOfRange    - a vertex argument is outside [0, VertexCount).
//	ErrBadWeight           - non-positive weight, or a non-unit weight on an
//	                         unweighted graph.
//	ErrEdgeNotFound        - EdgeWeight on a cell holding 0.
//	ErrNegativeVertexCount - NewWithVertices called with n < 0.
//
// Failed operations leave the graph unchanged. Removing an absent edge is a
// no-op, not an error.
//
// Concurrency: none. A Graph assumes exclusive access for the duration of
// every call; embedders that share an instance must serialize externally.
package core

// Package bfs implements breadth-first traversal over a core.Graph,
// returning visit order, hop distances, and parent links.
//
// What:
//
//   - BFS(g, start, opts...): explore the component reachable from start in
//     frontier order. Vertices are marked when enqueued (never enqueued
//     twice) and recorded when dequeued.
//
// Neighbors are enqueued in ascending index order, so the traversal is
// fully deterministic. Only the reachable set is covered; len(Result.Order)
// equals the size of the reachable component. Result.Depth and
// Result.Parent hold -1 for unreached vertices, and Result.PathTo
// reconstructs a fewest-hop path from start.
//
// Complexity:
//
//   - Time:   O(V²) — neighbor scans are O(V) on the adjacency matrix.
//   - Memory: O(V).
//
// Errors:
//
//   - ErrGraphNil            - g is nil.
//   - ErrStartOutOfRange     - start is not a valid vertex index.
//   - any error returned by an OnVisit hook.
package bfs

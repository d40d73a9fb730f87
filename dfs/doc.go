// Package dfs implements iterative depth-first traversal over a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): walk the component reachable from start with
//     an explicit stack, recording vertices in visit order.
//
// The traversal is deterministic: unvisited neighbors are pushed in reverse
// index order, so the lowest-index neighbor is always explored first. Only
// the reachable set is covered — the walk makes no attempt to span
// disconnected components, and len(Result.Order) equals the size of the
// reachable component.
//
// An optional WithOnVisit hook observes each vertex as it is recorded;
// a hook error aborts the walk.
//
// Complexity:
//
//   - Time:   O(V²) — neighbor scans are O(V) on the adjacency matrix.
//   - Memory: O(V) for the stack and visited set.
//
// Errors:
//
//   - ErrGraphNil            - g is nil.
//   - ErrStartOutOfRange     - start is not a valid vertex index.
//   - any error returned by an OnVisit hook.
package dfs

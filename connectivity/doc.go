// Package connectivity provides structural analysis of a core.Graph:
// reachability-based connectivity checks, Kahn cycle detection with
// topological ordering, and the completeness check.
//
// What:
//
//   - IsConnected: weak connectivity — some vertex reaches every other
//     vertex. The empty graph is NOT connected (the vacuous case is false).
//   - IsStronglyConnected: every vertex reaches every other vertex.
//   - AreStronglyConnected(u, v): u reaches v and v reaches u.
//   - HasCycle: Kahn's algorithm — repeatedly peel zero-in-degree vertices;
//     a cycle exists iff the peel removes fewer than V vertices. A self-loop
//     always implies a cycle.
//   - TopologicalOrder: the Kahn removal order; fails with ErrCycleDetected
//     when the graph is not a DAG.
//   - IsComplete: every off-diagonal cell is non-zero; the diagonal is
//     ignored. Vacuously true for 0 or 1 vertices.
//
// Reachability is computed with dfs.DFS, so all results are deterministic.
//
// Complexity:
//
//   - IsConnected / IsStronglyConnected: O(V³) worst case (a DFS per vertex
//     over matrix rows).
//   - HasCycle / TopologicalOrder: O(V²).
//   - IsComplete: O(V²).
//
// Errors:
//
//   - ErrGraphNil               - g is nil.
//   - ErrCycleDetected          - TopologicalOrder on a cyclic graph.
//   - core.ErrVertexOutOfRange  - AreStronglyConnected with a bad index.
package connectivity

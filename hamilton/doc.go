// Package hamilton enumerates Hamiltonian cycles of a core.Graph by
// exhaustive backtracking over simple paths.
//
// What:
//
//   - FindCycles(g): every Hamiltonian cycle, as closed index sequences of
//     length V+1 (first element == last element).
//   - HasCycle(g): whether at least one Hamiltonian cycle exists;
//     short-circuits on the first hit instead of enumerating everything.
//
// Enumeration order is deterministic: start vertices ascend, and at each
// step unvisited out-neighbors are tried in ascending index order.
//
// The search runs once per candidate start vertex, so the same geometric
// cycle is reported once for every start vertex (and direction) that
// discovers it — results are deliberately NOT de-duplicated across
// rotations or reflections.
//
// Cheap necessary conditions are checked before the exponential search:
// a graph that is not weakly connected, or that contains no directed cycle
// at all (Kahn), has no Hamiltonian cycle. The single-vertex graph is
// special-cased: a self-loop yields the one cycle [0,0], otherwise there
// are none.
//
// Complexity:
//
//   - Time:   O(V!) worst case — the caller bounds V.
//   - Memory: O(V) per search (path, visited set, recursion depth),
//     plus the returned cycles.
//
// Errors:
//
//   - ErrGraphNil - g is nil.
package hamilton

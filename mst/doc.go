// Package mst computes a minimum spanning tree of a connected, weighted
// core.Graph using Prim's algorithm.
//
// What:
//
//   - Prim(g): grow the tree from vertex 0 with the classic array-based
//     scheme: key[v] is the cheapest known edge from the tree to v;
//     repeatedly pull the unvisited vertex with the minimum key (ascending
//     index breaks ties), attach it to its recorded parent, and relax its
//     out-neighbors.
//
// The result is a NEW weighted Graph on the same vertex count holding
// exactly V-1 undirected edges (each stored in both directions) that form
// a minimum-weight spanning tree. The input graph is not modified.
//
// Preconditions:
//
//   - g must be weighted (ErrInvalidGraph otherwise, also for nil g).
//   - g must be connected in the weak sense of connectivity.IsConnected
//     (ErrDisconnected otherwise; the empty graph is disconnected).
//
// Complexity:
//
//   - Time:   O(V²) — the natural fit for an adjacency matrix.
//   - Memory: O(V).
package mst

// File: methods_clone.go
// Role: deep copies and the diagnostic matrix rendering.

package core

import (
	"fmt"
	"strings"
)

// Clone returns a deep copy of the graph: same vertex count, same weighted
// flag, independent adjacency matrix. Mutating either graph never affects
// the other.
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		numVertices: g.numVertices,
		weighted:    g.weighted,
		adjacency:   make([][]int64, g.numVertices),
	}
	for i, row := range g.adjacency {
		clone.adjacency[i] = make([]int64, g.numVertices)
		copy(clone.adjacency[i], row)
	}

	return clone
}

// String renders the adjacency matrix as deterministic diagnostic text:
// a header row of vertex indices, a dash rule, then one "index | values"
// line per row. The rendering is for inspection only and is not a
// round-trippable serialization.
//
// Example for a 3-vertex graph with edges 0→1 and 2→0:
//
//	    0 1 2
//	   ------
//	0 | 0 1 0
//	1 | 0 0 0
//	2 | 1 0 0
func (g *Graph) String() string {
	var sb strings.Builder

	sb.WriteString("    ")
	for i := 0; i < g.numVertices; i++ {
		fmt.Fprintf(&sb, "%d ", i)
	}
	sb.WriteByte('\n')

	sb.WriteString("   ")
	sb.WriteString(strings.Repeat("--", g.numVertices))
	sb.WriteByte('\n')

	for row := 0; row < g.numVertices; row++ {
		fmt.Fprintf(&sb, "%d | ", row)
		for _, w := range g.adjacency[row] {
			fmt.Fprintf(&sb, "%d ", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

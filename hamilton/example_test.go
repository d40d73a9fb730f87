package hamilton_test

import (
	"fmt"

	"github.com/avlasov/densegraph/core"
	"github.com/avlasov/densegraph/hamilton"
)

// ExampleFindCycles enumerates the Hamiltonian cycles of a directed
// 4-ring. The single geometric cycle is reported once per start vertex,
// so four rotations come back.
func ExampleFindCycles() {
	g, _ := core.NewWithVertices(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	cycles, err := hamilton.FindCycles(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range cycles {
		fmt.Println(c)
	}
	// Output:
	// [0 1 2 3 0]
	// [1 2 3 0 1]
	// [2 3 0 1 2]
	// [3 0 1 2 3]
}

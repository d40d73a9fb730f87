package connectivity_test

import (
	"fmt"

	"github.com/avlasov/densegraph/connectivity"
	"github.com/avlasov/densegraph/core"
)

// ExampleTopologicalOrder orders a diamond-shaped DAG, then shows the
// same graph turning cyclic once the back edge 3→0 closes the loop.
func ExampleTopologicalOrder() {
	g, _ := core.NewWithVertices(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 3)

	order, err := connectivity.TopologicalOrder(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", order)

	_ = g.AddEdge(3, 0)
	cyclic, _ := connectivity.HasCycle(g)
	fmt.Println("cyclic after 3->0:", cyclic)
	// Output:
	// order: [0 1 2 3]
	// cyclic after 3->0: true
}

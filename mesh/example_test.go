package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/relief/mesh"
)

// ExampleFromEdges builds a 5-node path graph and inspects a node's
// neighborhood. Node indices align with the field being analyzed.
func ExampleFromEdges() {
	g, err := mesh.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n2, _ := g.Neighbors(2)
	d0, _ := g.Degree(0)
	fmt.Println("order:", g.Order())
	fmt.Println("neighbors of 2:", n2)
	fmt.Println("degree of 0:", d0)
	// Output:
	// order: 5
	// neighbors of 2: [1 3]
	// degree of 0: 1
}

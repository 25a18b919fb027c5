package prominence_test

import (
	"fmt"

	"github.com/katalvlaran/relief/mesh"
	"github.com/katalvlaran/relief/prominence"
)

// ExampleCompute decomposes a five-node ridge into its peak hierarchy.
// Nodes 0 and 2 tower over their neighbors; the cols at nodes 1 and 3
// record where their basins meet.
func ExampleCompute() {
	values := []float64{10, 7, 9, 3, 8}
	g, err := mesh.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := prominence.Compute(values, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("peaks:", res.Peaks)
	for _, kc := range res.KeyCols {
		fmt.Printf("col %d merges %v\n", kc.Col, kc.Peaks)
	}
	for _, p := range res.Peaks {
		fmt.Printf("prominence of %d: %.0f\n", p, res.Prominence[p])
	}
	// Output:
	// peaks: [0 2 4]
	// col 1 merges [0 2]
	// col 3 merges [2 4]
	// prominence of 0: 3
	// prominence of 2: 2
	// prominence of 4: 5
}

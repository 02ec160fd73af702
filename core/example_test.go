package core_test

import (
	"fmt"

	"github.com/katalvlaran/gedembed/core"
)

// ExampleNewGraph builds a labelled triangle-with-tail and inspects it.
func ExampleNewGraph() {
	g, err := core.NewGraph(4,
		[][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 2}},
		core.WithLabels([]int{6, 6, 8, 1}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", g.Order(), "size:", g.Size())
	fmt.Println("edges:", g.Edges())
	fmt.Println("N(2):", g.Neighbors(2))
	l, _ := g.Label(2)
	fmt.Println("label(2):", l)
	// Output:
	// order: 4 size: 4
	// edges: [{0 1} {0 2} {1 2} {2 3}]
	// N(2): [0 1 3]
	// label(2): 8
}

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/gedembed/builder"
)

// A 4-cycle with a pendant path attached to node 3.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		builder.Cycle(4),
		builder.Path(2),
		builder.Connect([2]int{3, 4}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("order:", g.Order(), "size:", g.Size())
	fmt.Println("N(3):", g.Neighbors(3))
	// Output:
	// order: 6 size: 6
	// N(3): [0 2 4]
}

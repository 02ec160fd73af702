package editcost_test

import (
	"fmt"

	"github.com/katalvlaran/gedembed/assignment"
	"github.com/katalvlaran/gedembed/core"
	"github.com/katalvlaran/gedembed/editcost"
)

// A single edge embedded into a three-node path: one node is inserted,
// and the edge to the inserted node is not charged.
func ExampleCompute() {
	src := core.MustGraph(2, [][2]int{{0, 1}})
	tgt := core.MustGraph(3, [][2]int{{0, 1}, {1, 2}})
	c := assignment.Correspondence{Mapping: []int{0, 1}, Targets: 3}

	res, err := editcost.Compute(c, src, tgt, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("node: %v edge: %v total: %v\n", res.NodeCost, res.EdgeCost, res.Total())
	// Output: node: 1 edge: 0 total: 1
}

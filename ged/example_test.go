package ged_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gedembed/builder"
	"github.com/katalvlaran/gedembed/core"
	"github.com/katalvlaran/gedembed/ged"
)

func entryOf(g *core.Graph, id int) ged.Entry {
	e, err := builder.StructuralEmbedding(g, 2)
	if err != nil {
		panic(err)
	}

	return ged.Entry{Graph: g, Embedding: e, ID: id}
}

// Two test graphs against two train graphs with structural embeddings.
func ExampleDistanceMatrix() {
	test := []ged.Entry{
		entryOf(builder.MustBuildGraph(nil, builder.Path(2)), 0),
		entryOf(builder.MustBuildGraph(nil, builder.Cycle(3)), 1),
	}
	train := []ged.Entry{
		entryOf(builder.MustBuildGraph(nil, builder.Path(3)), 0),
		entryOf(builder.MustBuildGraph(nil, builder.Complete(4)), 1),
	}

	res, err := ged.DistanceMatrix(context.Background(), test, train, ged.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Distances.Ints())
	// Output: [[1 2] [1 1]]
}

package ged_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gedembed/ged"
)

func BenchmarkDistanceMatrix(b *testing.B) {
	test := randomEntries(b, 16, 1)
	train := randomEntries(b, 16, 2)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ged.DistanceMatrix(ctx, test, train); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistanceMatrix_Sequential(b *testing.B) {
	test := randomEntries(b, 16, 1)
	train := randomEntries(b, 16, 2)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ged.DistanceMatrix(ctx, test, train, ged.WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}

package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Split shuffles 0..n-1 with seed and returns round(n·testFraction) test
// indices and the remaining train indices, each sorted ascending.
// The same (n, testFraction, seed) always yields the same split.
func Split(n int, testFraction float64, seed int64) (train, test []int, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("Split: n=%d: %w", n, ErrIndexOutOfRange)
	}
	if math.IsNaN(testFraction) || testFraction < 0 || testFraction > 1 {
		return nil, nil, fmt.Errorf("Split: %v: %w", testFraction, ErrBadFraction)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	k := int(math.Round(float64(n) * testFraction))
	test = append([]int(nil), perm[:k]...)
	train = append([]int(nil), perm[k:]...)
	sort.Ints(test)
	sort.Ints(train)

	return train, test, nil
}

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces one embedding coordinate from the configured RNG.
// It must be deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) float64

// ConstantValueFn always yields value.
func ConstantValueFn(value float64) ValueFn {
	return func(_ *rand.Rand) float64 { return value }
}

// UniformValueFn samples uniformly in [lo, hi). Panics if hi < lo.
// With a nil rng it yields lo.
func UniformValueFn(lo, hi float64) ValueFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformValueFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalValueFn samples from N(mean, stddev). Panics if stddev < 0.
// With a nil rng it yields mean.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return rng.NormFloat64()*stddev + mean
	}
}

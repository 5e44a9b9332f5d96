package generator

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeCost is the cost used when no WeightFn is configured.
const DefaultEdgeCost int64 = 1

// WeightFn produces an edge cost given an RNG source. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeCost.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeCost
}

// UniformWeightFn returns a WeightFn sampling uniformly over [min, max].
// Panics if max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min <= max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1
	return func(rng *rand.Rand) int64 {
		if rng == nil || span <= 0 {
			return min
		}
		return min + rng.Int63n(span)
	}
}

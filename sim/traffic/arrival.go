package traffic

import (
	"math"
	"math/rand"
)

// poissonRand samples a Poisson(lambda) count using Knuth's product method.
// exp(-lambda) underflows for large rates, so lambda above the split
// threshold is handled by summing two independent half-rate draws
// (Poisson(a+b) = Poisson(a) + Poisson(b) for independent draws).
func poissonRand(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	if lambda > poissonSplitThreshold {
		half := lambda / 2
		return poissonRand(rng, half) + poissonRand(rng, lambda-half)
	}

	limit := math.Exp(-lambda)
	count := 0
	product := rng.Float64()
	for product > limit {
		count++
		product *= rng.Float64()
	}
	return count
}

// Threshold chosen well inside exp(-lambda)'s representable range.
const poissonSplitThreshold = 256.0

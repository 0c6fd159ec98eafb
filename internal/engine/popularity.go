package engine

import "math"

// DefaultPopularityExponent is the rank-decay exponent of the catalog
// popularity curve.
const DefaultPopularityExponent = 1.07

// PopularityWeights computes a rank-based popularity distribution over n
// items: rank r gets unnormalized weight 1/r^exponent, then weights are
// normalized to sum to 1. Rank 1 is the first-generated item, so early
// catalog entries are systematically more popular.
//
// The result has exactly n positive entries, monotonically non-increasing.
func PopularityWeights(n int, exponent float64) []float64 {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	var sum float64
	for r := 1; r <= n; r++ {
		w := 1 / math.Pow(float64(r), exponent)
		weights[r-1] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

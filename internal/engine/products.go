package engine

import (
	"fmt"
	"math"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

// Categories is the closed category set products draw from uniformly.
var Categories = []string{
	"Electronics", "Books", "Home", "Toys", "Fashion", "Beauty", "Grocery", "Outdoors",
}

const (
	priceLogMean  = 3.2
	priceLogSigma = 0.5
	stockMean     = 200.0
	stockSD       = 80.0
	skuBase       = 100000
)

// GenerateProducts produces n products with sequential ids. Popularity is
// assigned by generation-order rank from the Zipf-like curve, then
// re-normalized over the final set so the weights always sum to 1 even if
// anything upstream filtered the rank vector.
func GenerateProducts(rc *randctx.Context, n int) []Product {
	weights := PopularityWeights(n, DefaultPopularityExponent)

	products := make([]Product, 0, n)
	var popSum float64
	for i := 0; i < n; i++ {
		products = append(products, Product{
			ID:         i + 1,
			SKU:        fmt.Sprintf("SKU-%d", skuBase+i),
			Name:       rc.ProductName(),
			Category:   rc.Pick(Categories),
			Price:      round2(rc.LogNormal(priceLogMean, priceLogSigma)),
			Stock:      int(math.Abs(rc.Normal(stockMean, stockSD))),
			Popularity: weights[i],
			CreatedAt:  rc.TimeWithin(1095),
		})
		popSum += weights[i]
	}
	for i := range products {
		products[i].Popularity /= popSum
	}
	return products
}

// popularityOf builds the weight vector consumed by weighted product draws.
func popularityOf(products []Product) []float64 {
	weights := make([]float64, len(products))
	for i, p := range products {
		weights[i] = p.Popularity
	}
	return weights
}

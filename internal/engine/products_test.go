package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProductsFields(t *testing.T) {
	products := GenerateProducts(testCtx(1), 200)
	require.Len(t, products, 200)

	categorySet := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		categorySet[c] = struct{}{}
	}

	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, fmt.Sprintf("SKU-%d", 100000+i), p.SKU)
		assert.Contains(t, categorySet, p.Category)
		assert.Greater(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.False(t, p.CreatedAt.After(testNow))
	}
}

func TestGenerateProductsPopularityNormalized(t *testing.T) {
	for _, n := range []int{1, 2, 7, 300} {
		products := GenerateProducts(testCtx(2), n)

		var sum float64
		for _, p := range products {
			assert.Greater(t, p.Popularity, 0.0)
			assert.LessOrEqual(t, p.Popularity, 1.0)
			sum += p.Popularity
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "n=%d", n)
	}
}

func TestGenerateProductsRankOrder(t *testing.T) {
	products := GenerateProducts(testCtx(3), 50)
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i].Popularity, products[i-1].Popularity)
	}
}

func TestGenerateProductsZero(t *testing.T) {
	assert.Empty(t, GenerateProducts(testCtx(4), 0))
}

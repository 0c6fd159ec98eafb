package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateFixtures(t *testing.T, seed int64, userN, productN int) ([]User, []Product) {
	t.Helper()
	rc := testCtx(seed)
	users, err := GenerateUsers(rc, userN)
	require.NoError(t, err)
	products := GenerateProducts(rc, productN)
	return users, products
}

func TestGenerateOrdersReferentialIntegrity(t *testing.T) {
	rc := testCtx(1)
	users, err := GenerateUsers(rc, 40)
	require.NoError(t, err)
	products := GenerateProducts(rc, 25)

	orders, err := GenerateOrders(rc, 500, users, products)
	require.NoError(t, err)
	require.Len(t, orders, 500)

	for i, o := range orders {
		assert.Equal(t, i+1, o.ID)
		assert.GreaterOrEqual(t, o.UserID, 1)
		assert.LessOrEqual(t, o.UserID, len(users))
		assert.GreaterOrEqual(t, o.ProductID, 1)
		assert.LessOrEqual(t, o.ProductID, len(products))
		assert.GreaterOrEqual(t, o.Quantity, 1)
	}
}

func TestGenerateOrdersDerivedTotal(t *testing.T) {
	rc := testCtx(2)
	users, err := GenerateUsers(rc, 10)
	require.NoError(t, err)
	products := GenerateProducts(rc, 10)

	orders, err := GenerateOrders(rc, 1000, users, products)
	require.NoError(t, err)

	for _, o := range orders {
		price := products[o.ProductID-1].Price
		assert.Equal(t, round2(price*float64(o.Quantity)), o.Total, "order %d", o.ID)
	}
}

func TestGenerateOrdersStatusDistribution(t *testing.T) {
	rc := testCtx(3)
	users, err := GenerateUsers(rc, 50)
	require.NoError(t, err)
	products := GenerateProducts(rc, 30)

	orders, err := GenerateOrders(rc, 10000, users, products)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}

	want := map[string]float64{"created": 0.20, "paid": 0.50, "shipped": 0.27, "cancelled": 0.03}
	for status, p := range want {
		assert.InDelta(t, p, float64(counts[status])/float64(len(orders)), 0.02, status)
	}
}

func TestGenerateOrdersPopularityBias(t *testing.T) {
	rc := testCtx(4)
	users, err := GenerateUsers(rc, 20)
	require.NoError(t, err)
	products := GenerateProducts(rc, 20)

	orders, err := GenerateOrders(rc, 20000, users, products)
	require.NoError(t, err)

	hits := make(map[int]int)
	for _, o := range orders {
		hits[o.ProductID]++
	}
	// Rank 1 carries the largest weight, so it must dominate the tail.
	assert.Greater(t, hits[1], hits[20])
}

func TestGenerateOrdersEmptySources(t *testing.T) {
	users, products := generateFixtures(t, 5, 5, 5)

	_, err := GenerateOrders(testCtx(5), 1, nil, products)
	assert.ErrorIs(t, err, ErrInsufficientSource)

	_, err = GenerateOrders(testCtx(5), 1, users, nil)
	assert.ErrorIs(t, err, ErrInsufficientSource)
}

func TestGenerateOrdersZeroCount(t *testing.T) {
	orders, err := GenerateOrders(testCtx(6), 0, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGenerateOrdersTimestampSpan(t *testing.T) {
	users, products := generateFixtures(t, 7, 5, 5)
	orders, err := GenerateOrders(testCtx(7), 300, users, products)
	require.NoError(t, err)

	floor := testNow.AddDate(0, 0, -548)
	for _, o := range orders {
		assert.False(t, o.CreatedAt.After(testNow))
		assert.False(t, o.CreatedAt.Before(floor))
	}
}

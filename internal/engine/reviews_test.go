package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReviewsRatingBounds(t *testing.T) {
	rc := testCtx(1)
	users, err := GenerateUsers(rc, 30)
	require.NoError(t, err)
	products := GenerateProducts(rc, 20)
	orders, err := GenerateOrders(rc, 200, users, products)
	require.NoError(t, err)

	reviews, err := GenerateReviews(rc, 2000, users, products, orders)
	require.NoError(t, err)
	require.Len(t, reviews, 2000)

	for i, r := range reviews {
		assert.Equal(t, i+1, r.ID)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.Contains(t, ReviewTitles, r.Title)
		assert.NotEmpty(t, r.Body)
	}
}

func TestGenerateReviewsReferentialIntegrity(t *testing.T) {
	rc := testCtx(2)
	users, err := GenerateUsers(rc, 15)
	require.NoError(t, err)
	products := GenerateProducts(rc, 10)
	orders, err := GenerateOrders(rc, 100, users, products)
	require.NoError(t, err)

	reviews, err := GenerateReviews(rc, 500, users, products, orders)
	require.NoError(t, err)

	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.UserID, 1)
		assert.LessOrEqual(t, r.UserID, len(users))
		assert.GreaterOrEqual(t, r.ProductID, 1)
		assert.LessOrEqual(t, r.ProductID, len(products))
	}
}

func TestGenerateReviewsPairReuseFraction(t *testing.T) {
	// A sparse user x product space keeps accidental matches from the
	// independent branch negligible, so the observed fraction tracks the
	// 0.7 reuse probability.
	rc := testCtx(3)
	users, err := GenerateUsers(rc, 200)
	require.NoError(t, err)
	products := GenerateProducts(rc, 100)
	orders, err := GenerateOrders(rc, 1000, users, products)
	require.NoError(t, err)

	reviews, err := GenerateReviews(rc, 2000, users, products, orders)
	require.NoError(t, err)

	orderPairs := make(map[orderPair]struct{}, len(orders))
	for _, o := range orders {
		orderPairs[orderPair{o.UserID, o.ProductID}] = struct{}{}
	}

	matched := 0
	for _, r := range reviews {
		if _, ok := orderPairs[orderPair{r.UserID, r.ProductID}]; ok {
			matched++
		}
	}
	assert.InDelta(t, 0.70, float64(matched)/float64(len(reviews)), 0.05)
}

func TestGenerateReviewsWithoutOrders(t *testing.T) {
	rc := testCtx(4)
	users, err := GenerateUsers(rc, 10)
	require.NoError(t, err)
	products := GenerateProducts(rc, 5)

	reviews, err := GenerateReviews(rc, 50, users, products, nil)
	require.NoError(t, err)
	require.Len(t, reviews, 50)
}

func TestGenerateReviewsEmptySources(t *testing.T) {
	users, products := generateFixtures(t, 5, 3, 3)

	_, err := GenerateReviews(testCtx(5), 1, nil, products, nil)
	assert.ErrorIs(t, err, ErrInsufficientSource)

	_, err = GenerateReviews(testCtx(5), 1, users, nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientSource)
}

func TestGenerateReviewsPopularityHalo(t *testing.T) {
	rc := testCtx(6)
	users, err := GenerateUsers(rc, 50)
	require.NoError(t, err)
	// Two products: rank 1 holds ~67% of the popularity mass.
	products := GenerateProducts(rc, 2)

	reviews, err := GenerateReviews(rc, 20000, users, products, nil)
	require.NoError(t, err)

	var sum, count [3]float64
	for _, r := range reviews {
		sum[r.ProductID] += float64(r.Rating)
		count[r.ProductID]++
	}
	require.Greater(t, count[1], 0.0)
	require.Greater(t, count[2], 0.0)
	assert.Greater(t, sum[1]/count[1], sum[2]/count[2])
}

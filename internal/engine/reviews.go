package engine

import (
	"fmt"
	"math"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

// ReviewTitles is the fixed phrase pool review titles draw from uniformly.
var ReviewTitles = []string{
	"Exceeded expectations", "Solid value", "Not as described", "Five stars",
	"Would buy again", "Quality could be better", "Fast shipping", "Amazing product",
}

const (
	pairReuseProbability = 0.7
	ratingBase           = 3.6
	ratingPopularityGain = 2.0
	ratingSD             = 0.9
	reviewSpanDays       = 365 // trailing 12 months
)

type orderPair struct {
	userID    int
	productID int
}

// GenerateReviews produces n reviews. With probability 0.7 a review reuses a
// distinct (user, product) pair observed in orders; otherwise user and
// product are drawn independently. The rating mean is lifted by the
// product's popularity, modeling a halo effect, and clamped to [1,5].
//
// An empty orders slice is fine: the reuse branch is simply never taken.
func GenerateReviews(rc *randctx.Context, n int, users []User, products []Product, orders []Order) ([]Review, error) {
	if n > 0 && (len(users) == 0 || len(products) == 0) {
		return nil, fmt.Errorf("reviews need non-empty users (%d) and products (%d): %w",
			len(users), len(products), ErrInsufficientSource)
	}

	// Distinct pairs in first-seen order, so the uniform pair pick is
	// reproducible for a fixed seed.
	seen := make(map[orderPair]struct{}, len(orders))
	pairs := make([]orderPair, 0, len(orders))
	for _, o := range orders {
		p := orderPair{o.UserID, o.ProductID}
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	}

	popByID := make(map[int]float64, len(products))
	for _, p := range products {
		popByID[p.ID] = p.Popularity
	}

	reviews := make([]Review, 0, n)
	for i := 0; i < n; i++ {
		var userID, productID int
		if len(pairs) > 0 && rc.Bool(pairReuseProbability) {
			pair := pairs[rc.IntN(len(pairs))]
			userID, productID = pair.userID, pair.productID
		} else {
			userID = users[rc.IntN(len(users))].ID
			productID = products[rc.IntN(len(products))].ID
		}

		base := ratingBase + ratingPopularityGain*popByID[productID]
		rating := clampRating(int(math.Round(rc.Normal(base, ratingSD))))

		reviews = append(reviews, Review{
			ID:        i + 1,
			UserID:    userID,
			ProductID: productID,
			Rating:    rating,
			Title:     rc.Pick(ReviewTitles),
			Body:      rc.Paragraph(3),
			CreatedAt: rc.TimeWithin(reviewSpanDays),
		})
	}
	return reviews, nil
}

func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

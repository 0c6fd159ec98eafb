package engine

import (
	"fmt"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

// OrderStatuses and orderStatusWeights define the categorical status
// distribution: most orders are paid, a few are cancelled.
var (
	OrderStatuses      = []string{"created", "paid", "shipped", "cancelled"}
	orderStatusWeights = []float64{0.20, 0.50, 0.27, 0.03}
)

const (
	quantityP     = 0.4
	orderSpanDays = 548 // trailing 18 months
)

// GenerateOrders produces n orders referencing the given users and products.
// The user is drawn uniformly, the product proportionally to its popularity
// weight (with replacement), and the total is derived from the chosen
// product's price, never sampled.
func GenerateOrders(rc *randctx.Context, n int, users []User, products []Product) ([]Order, error) {
	if n > 0 && (len(users) == 0 || len(products) == 0) {
		return nil, fmt.Errorf("orders need non-empty users (%d) and products (%d): %w",
			len(users), len(products), ErrInsufficientSource)
	}

	weights := popularityOf(products)
	orders := make([]Order, 0, n)
	for i := 0; i < n; i++ {
		user := users[rc.IntN(len(users))]
		product := products[rc.WeightedIndex(weights)]
		qty := rc.Geometric(quantityP)

		orders = append(orders, Order{
			ID:        i + 1,
			UserID:    user.ID,
			ProductID: product.ID,
			Quantity:  qty,
			Total:     round2(product.Price * float64(qty)),
			Status:    OrderStatuses[rc.WeightedIndex(orderStatusWeights)],
			CreatedAt: rc.TimeWithin(orderSpanDays),
		})
	}
	return orders, nil
}

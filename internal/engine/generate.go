package engine

import (
	"fmt"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

// Generate runs the full pipeline in strict dependency order:
// Users -> Products -> Orders -> Reviews. Each stage only sees the immutable
// output of earlier stages through its arguments; nothing is read from shared
// state. The context must be owned exclusively by this run.
//
// On any stage error no partial dataset is returned.
func Generate(rc *randctx.Context, counts Counts) (*Dataset, error) {
	users, err := GenerateUsers(rc, counts.Users)
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}

	products := GenerateProducts(rc, counts.Products)

	orders, err := GenerateOrders(rc, counts.Orders, users, products)
	if err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}

	reviews, err := GenerateReviews(rc, counts.Reviews, users, products, orders)
	if err != nil {
		return nil, fmt.Errorf("reviews: %w", err)
	}

	return &Dataset{
		Users:    users,
		Products: products,
		Orders:   orders,
		Reviews:  reviews,
	}, nil
}

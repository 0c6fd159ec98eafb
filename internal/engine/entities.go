// Package engine generates correlated synthetic users, products, orders and
// reviews from a single seeded randctx.Context. All randomness flows through
// the context passed to each generator; entities are never mutated after
// creation and cross-reference each other by id only.
package engine

import "time"

// User is an independent account record.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// Product is a catalog record annotated with a normalized popularity weight.
// Popularity across one run's products sums to 1.
type Product struct {
	ID         int       `json:"id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	Popularity float64   `json:"popularity"`
	CreatedAt  time.Time `json:"created_at"`
}

// Order references a user and a product generated in the same run.
// Total is derived from the product price, never sampled.
type Order struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Review references a user and a product, preferring pairs that actually
// ordered. Rating is always in [1,5].
type Review struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Dataset is the immutable result of one generation run, in generation order.
type Dataset struct {
	Users    []User
	Products []Product
	Orders   []Order
	Reviews  []Review
}

// Counts configures how many records of each entity a run produces.
type Counts struct {
	Users    int
	Products int
	Orders   int
	Reviews  int
}

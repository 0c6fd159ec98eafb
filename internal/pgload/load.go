package pgload

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/engine"
)

const copyBatchSize = 1000

// BuildConnString assembles a postgres:// URL from discrete connection
// parameters. Used when the caller did not pass a full --db-url.
func BuildConnString(host string, port int, user, password, db, sslmode string) string {
	hostPort := host
	if port > 0 {
		hostPort = fmt.Sprintf("%s:%d", host, port)
	}
	if sslmode == "" {
		sslmode = "disable"
	}
	u := &url.URL{
		Scheme:   "postgres",
		Host:     hostPort,
		Path:     "/" + db,
		RawQuery: "sslmode=" + sslmode,
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

// Load bulk-inserts the dataset in FK order: users and products before
// orders and reviews. Rows are copied in batches; any constraint violation
// surfaces as the underlying pgx error.
func Load(ctx context.Context, conn *pgx.Conn, ds *engine.Dataset) error {
	for _, t := range []struct {
		name    string
		columns []string
		rows    [][]any
	}{
		{"users", userColumns, UserRows(ds.Users)},
		{"products", productColumns, ProductRows(ds.Products)},
		{"orders", orderColumns, OrderRows(ds.Orders)},
		{"reviews", reviewColumns, ReviewRows(ds.Reviews)},
	} {
		if err := copyBatched(ctx, conn, t.name, t.columns, t.rows); err != nil {
			return err
		}
	}
	return nil
}

func copyBatched(ctx context.Context, conn *pgx.Conn, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += copyBatchSize {
		end := start + copyBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		_, err := conn.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows[start:end]))
		if err != nil {
			return fmt.Errorf("copy into %s (rows %d..%d): %w", table, start, end, err)
		}
	}
	return nil
}

var (
	userColumns    = []string{"id", "name", "email", "phone", "country", "created_at", "is_active"}
	productColumns = []string{"id", "sku", "name", "category", "price", "stock", "popularity", "created_at"}
	orderColumns   = []string{"id", "user_id", "product_id", "quantity", "total", "status", "created_at"}
	reviewColumns  = []string{"id", "user_id", "product_id", "rating", "title", "body", "created_at"}
)

// UserRows converts users to CopyFrom row values, column order per userColumns.
func UserRows(users []engine.User) [][]any {
	rows := make([][]any, len(users))
	for i, u := range users {
		rows[i] = []any{u.ID, u.Name, u.Email, u.Phone, u.Country, u.CreatedAt, u.IsActive}
	}
	return rows
}

// ProductRows converts products to CopyFrom row values.
func ProductRows(products []engine.Product) [][]any {
	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{p.ID, p.SKU, p.Name, p.Category, p.Price, p.Stock, p.Popularity, p.CreatedAt}
	}
	return rows
}

// OrderRows converts orders to CopyFrom row values.
func OrderRows(orders []engine.Order) [][]any {
	rows := make([][]any, len(orders))
	for i, o := range orders {
		rows[i] = []any{o.ID, o.UserID, o.ProductID, o.Quantity, o.Total, o.Status, o.CreatedAt}
	}
	return rows
}

// ReviewRows converts reviews to CopyFrom row values.
func ReviewRows(reviews []engine.Review) [][]any {
	rows := make([][]any, len(reviews))
	for i, r := range reviews {
		rows[i] = []any{r.ID, r.UserID, r.ProductID, r.Rating, r.Title, r.Body, r.CreatedAt}
	}
	return rows
}

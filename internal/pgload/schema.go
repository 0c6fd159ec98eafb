// Package pgload bulk-loads a generated dataset into PostgreSQL using the
// COPY protocol. Tables are created and loaded in foreign-key order and
// truncated in reverse; DB errors propagate unmodified with no retry layer.
package pgload

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// tableOrder is the FK-safe creation/load order; truncation walks it backwards.
var tableOrder = []string{"users", "products", "orders", "reviews"}

var ddl = map[string]string{
	"users": `CREATE TABLE IF NOT EXISTS users (
	id INT PRIMARY KEY,
	name TEXT,
	email TEXT UNIQUE,
	phone TEXT,
	country TEXT,
	created_at TIMESTAMPTZ,
	is_active BOOLEAN
)`,
	"products": `CREATE TABLE IF NOT EXISTS products (
	id INT PRIMARY KEY,
	sku TEXT UNIQUE,
	name TEXT,
	category TEXT,
	price NUMERIC,
	stock INT,
	popularity DOUBLE PRECISION,
	created_at TIMESTAMPTZ
)`,
	"orders": `CREATE TABLE IF NOT EXISTS orders (
	id INT PRIMARY KEY,
	user_id INT REFERENCES users(id) ON DELETE CASCADE,
	product_id INT REFERENCES products(id) ON DELETE CASCADE,
	quantity INT,
	total NUMERIC,
	status TEXT,
	created_at TIMESTAMPTZ
)`,
	"reviews": `CREATE TABLE IF NOT EXISTS reviews (
	id INT PRIMARY KEY,
	user_id INT REFERENCES users(id) ON DELETE CASCADE,
	product_id INT REFERENCES products(id) ON DELETE CASCADE,
	rating INT,
	title TEXT,
	body TEXT,
	created_at TIMESTAMPTZ
)`,
}

// EnsureSchema creates the four tables if they do not exist, in FK order.
func EnsureSchema(ctx context.Context, conn *pgx.Conn) error {
	for _, table := range tableOrder {
		if _, err := conn.Exec(ctx, ddl[table]); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return nil
}

// Truncate empties all four tables, dependents first.
func Truncate(ctx context.Context, conn *pgx.Conn) error {
	for i := len(tableOrder) - 1; i >= 0; i-- {
		stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", pgIdentifier(tableOrder[i]))
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("truncate %s: %w", tableOrder[i], err)
		}
	}
	return nil
}

// pgIdentifier quotes a PostgreSQL identifier.
func pgIdentifier(name string) string {
	return `"` + name + `"`
}

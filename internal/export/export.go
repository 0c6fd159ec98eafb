// Package export serializes a generated dataset to files, one per entity,
// preserving generation order. CSV gets a header row; JSON is
// newline-delimited, one object per line.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/engine"
)

// Formats accepted by the CLI.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// WriteFiles writes the dataset to dir in the given format and returns the
// written file paths mapped to their byte sizes. An unknown format is a
// configuration error and nothing is written.
func WriteFiles(dir, format string, ds *engine.Dataset) (map[string]int64, error) {
	switch format {
	case FormatCSV, FormatJSON:
	default:
		return nil, fmt.Errorf("unknown format %q (use csv or json)", format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	sizes := make(map[string]int64, 4)
	for _, entity := range []struct {
		name  string
		write func(*os.File) error
	}{
		{"users", func(f *os.File) error { return writeUsers(f, format, ds.Users) }},
		{"products", func(f *os.File) error { return writeProducts(f, format, ds.Products) }},
		{"orders", func(f *os.File) error { return writeOrders(f, format, ds.Orders) }},
		{"reviews", func(f *os.File) error { return writeReviews(f, format, ds.Reviews) }},
	} {
		path := filepath.Join(dir, entity.name+"."+format)
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		if err := entity.write(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("close %s: %w", path, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		sizes[path] = info.Size()
	}
	return sizes, nil
}

func writeUsers(f *os.File, format string, users []engine.User) error {
	if format == FormatJSON {
		return writeNDJSON(f, len(users), func(i int) any { return users[i] })
	}
	return writeCSV(f,
		[]string{"id", "name", "email", "phone", "country", "created_at", "is_active"},
		len(users),
		func(i int) []string {
			u := users[i]
			return []string{
				strconv.Itoa(u.ID), u.Name, u.Email, u.Phone, u.Country,
				fmtTime(u.CreatedAt), strconv.FormatBool(u.IsActive),
			}
		})
}

func writeProducts(f *os.File, format string, products []engine.Product) error {
	if format == FormatJSON {
		return writeNDJSON(f, len(products), func(i int) any { return products[i] })
	}
	return writeCSV(f,
		[]string{"id", "sku", "name", "category", "price", "stock", "popularity", "created_at"},
		len(products),
		func(i int) []string {
			p := products[i]
			return []string{
				strconv.Itoa(p.ID), p.SKU, p.Name, p.Category,
				fmtMoney(p.Price), strconv.Itoa(p.Stock),
				strconv.FormatFloat(p.Popularity, 'g', -1, 64),
				fmtTime(p.CreatedAt),
			}
		})
}

func writeOrders(f *os.File, format string, orders []engine.Order) error {
	if format == FormatJSON {
		return writeNDJSON(f, len(orders), func(i int) any { return orders[i] })
	}
	return writeCSV(f,
		[]string{"id", "user_id", "product_id", "quantity", "total", "status", "created_at"},
		len(orders),
		func(i int) []string {
			o := orders[i]
			return []string{
				strconv.Itoa(o.ID), strconv.Itoa(o.UserID), strconv.Itoa(o.ProductID),
				strconv.Itoa(o.Quantity), fmtMoney(o.Total), o.Status, fmtTime(o.CreatedAt),
			}
		})
}

func writeReviews(f *os.File, format string, reviews []engine.Review) error {
	if format == FormatJSON {
		return writeNDJSON(f, len(reviews), func(i int) any { return reviews[i] })
	}
	return writeCSV(f,
		[]string{"id", "user_id", "product_id", "rating", "title", "body", "created_at"},
		len(reviews),
		func(i int) []string {
			r := reviews[i]
			return []string{
				strconv.Itoa(r.ID), strconv.Itoa(r.UserID), strconv.Itoa(r.ProductID),
				strconv.Itoa(r.Rating), r.Title, r.Body, fmtTime(r.CreatedAt),
			}
		})
}

func writeCSV(f *os.File, header []string, n int, row func(i int) []string) error {
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeNDJSON(f *os.File, n int, record func(i int) any) error {
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := 0; i < n; i++ {
		if err := enc.Encode(record(i)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fmtMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

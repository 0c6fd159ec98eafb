// Package anonymize deterministically replaces values in named columns of a
// tabular dataset. Column names drive the replacement heuristic: email, name,
// phone and country columns receive type-appropriate synthetic values, any
// other column an opaque string. Given the same seed the output is identical.
package anonymize

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

// Strategies for synthesizing replacement values.
const (
	StrategyFaker = "faker" // type-appropriate synthetic values
	StrategyHash  = "hash"  // opaque numeric digests, stable per (seed, column, row)
)

// Table is a header plus rows, the shape both Read and Write preserve.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV loads a CSV file with a header row.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty input, expected a header row", path)
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// WriteCSV writes the table back out, header first.
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Columns returns a copy of t with the named columns replaced. Requesting a
// column the input does not have is a configuration error and nothing is
// produced.
func Columns(t *Table, columns []string, seed int64, strategy string) (*Table, error) {
	switch strategy {
	case StrategyFaker, StrategyHash:
	default:
		return nil, fmt.Errorf("unknown strategy %q (use faker or hash)", strategy)
	}

	index := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		index[name] = i
	}
	var missing []string
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("input has no column(s): %s", strings.Join(missing, ", "))
	}

	out := &Table{Header: append([]string(nil), t.Header...), Rows: make([][]string, len(t.Rows))}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}

	rc := randctx.New(seed)
	for _, col := range columns {
		ci := index[col]
		for ri := range out.Rows {
			var value string
			if strategy == StrategyHash {
				value = hashValue(seed, col, ri)
			} else {
				v, err := fakeValue(rc, col)
				if err != nil {
					return nil, fmt.Errorf("column %s row %d: %w", col, ri, err)
				}
				value = v
			}
			out.Rows[ri][ci] = value
		}
	}
	return out, nil
}

func fakeValue(rc *randctx.Context, column string) (string, error) {
	low := strings.ToLower(column)
	switch {
	case strings.Contains(low, "email"):
		return rc.UniqueEmail()
	case strings.Contains(low, "name"):
		return rc.Name(), nil
	case strings.Contains(low, "phone"):
		return rc.Phone(), nil
	case strings.Contains(low, "country"):
		return rc.Country(), nil
	default:
		return rc.OpaqueString(8, 16), nil
	}
}

// hashValue digests (seed, column, row) to a 10-digit decimal string. Unlike
// a process hash it is stable across runs for the same seed.
func hashValue(seed int64, column string, row int) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%d\x00%s\x00%d", seed, column, row))
	return fmt.Sprintf("%010d", sum%10000000000)
}

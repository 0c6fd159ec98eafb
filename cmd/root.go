// Package cmd wires the test-data-gen-kit CLI: generate files, seed
// Postgres, drive the ingestion API, serve the mock API, anonymize CSVs.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tdg [command]",
	Short: "Synthetic relational test data: generate, load, post, anonymize",
	Long: `Generates statistically plausible, referentially consistent users, products,
orders and reviews from a single deterministic seed, and moves them where a
test environment needs them: CSV/JSON files, a PostgreSQL database, or a mock
ingestion API.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logf prints a timestamped progress line to stdout.
func logf(format string, args ...any) {
	fmt.Printf("[%s] "+format+"\n", append([]any{time.Now().Format(time.RFC3339)}, args...)...)
}

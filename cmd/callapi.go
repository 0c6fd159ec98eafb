package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/apiclient"
	"github.com/TonyBarratt100/test-data-gen-kit/internal/engine"
	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

// callAPIProducts is the fixed product count backing orders and reviews in
// call-api runs; products themselves are never posted.
const callAPIProducts = 80

type callAPIConfig struct {
	users   int
	orders  int
	reviews int
	seed    int64

	apiBase    string
	userPath   string
	orderPath  string
	reviewPath string
}

var callCfg callAPIConfig

var callAPICmd = &cobra.Command{
	Use:   "call-api",
	Short: "Generate a dataset and POST it to the ingestion API row by row",
	RunE:  runCallAPI,
}

func init() {
	rootCmd.AddCommand(callAPICmd)

	callAPICmd.Flags().IntVar(&callCfg.users, "users", 50, "Number of users to post")
	callAPICmd.Flags().IntVar(&callCfg.orders, "orders", 120, "Number of orders to post")
	callAPICmd.Flags().IntVar(&callCfg.reviews, "reviews", 100, "Number of reviews to post")
	callAPICmd.Flags().Int64Var(&callCfg.seed, "seed", defaultSeed, "Deterministic generation seed")
	callAPICmd.Flags().StringVar(&callCfg.apiBase, "api-base", "http://localhost:8000", "Ingestion API base URL")
	callAPICmd.Flags().StringVar(&callCfg.userPath, "user-path", "/users", "Users endpoint path")
	callAPICmd.Flags().StringVar(&callCfg.orderPath, "order-path", "/orders", "Orders endpoint path")
	callAPICmd.Flags().StringVar(&callCfg.reviewPath, "review-path", "/reviews", "Reviews endpoint path")
}

func runCallAPI(cmd *cobra.Command, args []string) error {
	rc := randctx.New(callCfg.seed)
	ds, err := engine.Generate(rc, engine.Counts{
		Users:    callCfg.users,
		Products: callAPIProducts,
		Orders:   callCfg.orders,
		Reviews:  callCfg.reviews,
	})
	if err != nil {
		return err
	}

	client := apiclient.New(callCfg.apiBase)
	ctx := context.Background()

	if err := client.PostRows(ctx, callCfg.userPath, asRows(ds.Users)); err != nil {
		return err
	}
	if err := client.PostRows(ctx, callCfg.orderPath, asRows(ds.Orders)); err != nil {
		return err
	}
	if err := client.PostRows(ctx, callCfg.reviewPath, asRows(ds.Reviews)); err != nil {
		return err
	}

	logf("API calls completed: %d users, %d orders, %d reviews posted to %s",
		len(ds.Users), len(ds.Orders), len(ds.Reviews), callCfg.apiBase)
	return nil
}

func asRows[T any](records []T) []any {
	rows := make([]any, len(records))
	for i, r := range records {
		rows[i] = r
	}
	return rows
}

package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/apiserver"
)

type serveConfig struct {
	addr   string
	dbPath string
}

var serveCfg serveConfig

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the mock ingestion API",
	Long: `Serves POST /users, POST /orders, POST /reviews, GET /stats and
POST /reset. Records live in memory unless --db points at a bbolt file,
in which case they survive restarts.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveCfg.addr, "addr", ":8000", "Listen address")
	serveCmd.Flags().StringVar(&serveCfg.dbPath, "db", "", "Optional bbolt file for persistent storage")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var store apiserver.Store
	if serveCfg.dbPath != "" {
		bs, err := apiserver.NewBoltStore(serveCfg.dbPath)
		if err != nil {
			return err
		}
		store = bs
		logger.Info("using persistent store", "path", serveCfg.dbPath)
	} else {
		store = apiserver.NewMemoryStore()
	}
	defer store.Close()

	srv := apiserver.New(store, logger)
	logger.Info("mock ingestion API listening", "addr", serveCfg.addr)
	if err := http.ListenAndServe(serveCfg.addr, srv.Handler()); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

package cmd

import (
	"context"
	"log"

	"score-sync/core/catalog"
	"score-sync/core/config"
	"score-sync/core/logger"
	"score-sync/core/repository"
	"score-sync/feature/charts"
	"score-sync/feature/sonolus"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd runs a one-shot full ingestion without starting the server.
// Useful for pre-converting a chart library or validating it in CI.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Convert and publish all charts once, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		store := repository.NewStore(cfg.Repository, logg)
		if err := store.EnsureLayout(); err != nil {
			return err
		}

		cat := catalog.New()
		sonolus.Install(cat)

		converter := &charts.CommandConverter{Command: cfg.Charts.Converter}
		ingestor := charts.NewService(cat, store, converter, sonolus.EngineName, logg)
		if err := ingestor.WalkAll(context.Background(), cfg.Charts.Dir); err != nil {
			return err
		}

		logg.Info("Ingestion finished", zap.Int("levels", len(cat.Levels())))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}

package cmd

import (
	"log"

	"score-sync/core/catalog"
	"score-sync/core/config"
	"score-sync/core/logger"
	"score-sync/feature/bundles"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd extracts and imports all bundles once, then exits. Handy for
// checking a new bundle drop before restarting the server.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Extract and import all content bundles once, then exit",
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

		cat := catalog.New()
		importer := bundles.NewImporter(cat, cfg.Bundles, logg)
		added, err := importer.ImportAll()
		if err != nil {
			return err
		}

		logg.Info("Bundle import finished",
			zap.Int("levels_added", added),
			zap.Any("counts", cat.Counts()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
}

package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"score-sync/core/catalog"
	"score-sync/core/config"
	"score-sync/core/loader"
	"score-sync/core/logger"
	"score-sync/core/middleware/rayid"
	"score-sync/core/repository"
	"score-sync/core/storage"
	"score-sync/core/utils"

	"score-sync/feature/bundles"
	"score-sync/feature/charts"
	"score-sync/feature/sonolus"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chart server",
	Long:  `Ingests charts, imports bundles, and starts the HTTP server with the file watcher running.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 3. Content store (with optional object-storage mirror)
		store := repository.NewStore(cfg.Repository, logg)
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Optional storage mirror unavailable", zap.Error(err))
			} else if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Optional storage mirror unavailable", zap.Error(err))
			} else {
				store.WithMirror(client, cfg.Storage.Bucket)
				logg.Info("Mirroring content to object storage", zap.String("bucket", cfg.Storage.Bucket))
			}
		}
		if err := store.EnsureLayout(); err != nil {
			logg.Fatal("Failed to prepare content store", zap.Error(err))
		}

		// 4. Catalog with the statically-registered default engine
		cat := catalog.New()
		sonolus.Install(cat)

		// 5. Full chart ingestion
		if err := os.MkdirAll(cfg.Charts.Dir, 0o755); err != nil {
			logg.Fatal("Failed to create chart directory", zap.Error(err))
		}
		converter := &charts.CommandConverter{Command: cfg.Charts.Converter}
		ingestor := charts.NewService(cat, store, converter, sonolus.EngineName, logg)
		if err := ingestor.WalkAll(ctx, cfg.Charts.Dir); err != nil {
			logg.Fatal("Failed to ingest charts", zap.Error(err))
		}

		// 6. Bundle importing
		bundleFeature := bundles.NewFeature(cat, cfg.Bundles, logg)
		added, err := bundleFeature.Importer().ImportAll()
		if err != nil {
			logg.Fatal("Failed to import bundles", zap.Error(err))
		}
		logg.Info("Catalog ready",
			zap.Int("bundle_levels_added", added),
			zap.Any("counts", cat.Counts()))

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 8. Load Features
		mgr := loader.NewManager()
		mgr.Register(sonolus.NewFeature(cat, store, cfg.Server, logg))
		mgr.Register(bundleFeature)
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Incremental re-ingestion of score changes
		go func() {
			if err := ingestor.Watch(ctx, cfg.Charts.Dir); err != nil {
				logg.Fatal("Failed to establish chart watcher", zap.Error(err))
			}
		}()

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			for _, ip := range utils.LocalIPv4s() {
				logg.Info("Connect via " + cfg.Server.OpenURL(ip))
			}
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

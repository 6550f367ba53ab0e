package bundles

import (
	"score-sync/core/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	importer *Importer
	handler  *Handler
}

// NewFeature creates the bundles feature.
func NewFeature(cat *catalog.Catalog, cfg Config, logger *zap.Logger) *Feature {
	importer := NewImporter(cat, cfg, logger)
	return &Feature{
		importer: importer,
		handler:  NewHandler(importer),
	}
}

// Importer returns the bundle importer for start-up importing.
func (f *Feature) Importer() *Importer {
	return f.importer
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "bundles"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

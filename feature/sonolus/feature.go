package sonolus

import (
	"score-sync/core/catalog"
	"score-sync/core/repository"
	"score-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the serving feature.
func NewFeature(cat *catalog.Catalog, store *repository.Store, cfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(cat, store, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sonolus"
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

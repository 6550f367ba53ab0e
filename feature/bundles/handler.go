package bundles

import (
	"os"
	"path/filepath"
	"strings"

	"score-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves blobs from extracted bundle packages.
type Handler struct {
	importer *Importer
}

// NewHandler creates a new HTTP handler.
func NewHandler(importer *Importer) *Handler {
	return &Handler{importer: importer}
}

// RegisterRoutes registers the bundle repository route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/sonolus/repository/:hash", h.HandleRepository)
}

// HandleRepository resolves a blob by content hash, scanning every extracted
// package in listing order.
func (h *Handler) HandleRepository(c *fiber.Ctx) error {
	l := logger.WithRayID(h.importer.logger, c)
	hash := c.Params("hash")

	if hash == "" || strings.ContainsAny(hash, "/\\.") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid hash"})
	}

	packages, err := os.ReadDir(h.importer.cfg.ExtractDir)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}

	for _, pkg := range packages {
		if !pkg.IsDir() {
			continue
		}
		path := filepath.Join(h.importer.cfg.ExtractDir, pkg.Name(), "sonolus", "repository", hash)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		c.Set(fiber.HeaderContentType, "application/octet-stream")
		return c.SendFile(path)
	}

	l.Debug("Bundle blob not found", zap.String("hash", hash))
	return c.Status(fiber.StatusNotFound).SendString("Not found")
}

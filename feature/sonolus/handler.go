package sonolus

import (
	"strings"

	"score-sync/core/catalog"
	"score-sync/core/logger"
	"score-sync/core/repository"
	"score-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests from the Sonolus client.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the serving-layer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleRoot)
	app.Get("/sonolus/info", h.HandleInfo)

	app.Get("/sonolus/levels/list", h.HandleLevelList)
	app.Get("/sonolus/levels/:name", h.HandleLevelDetails)
	app.Get("/sonolus/skins/list", h.HandleSkinList)
	app.Get("/sonolus/skins/:name", h.HandleSkinDetails)
	app.Get("/sonolus/backgrounds/list", h.HandleBackgroundList)
	app.Get("/sonolus/backgrounds/:name", h.HandleBackgroundDetails)
	app.Get("/sonolus/effects/list", h.HandleEffectList)
	app.Get("/sonolus/effects/:name", h.HandleEffectDetails)
	app.Get("/sonolus/particles/list", h.HandleParticleList)
	app.Get("/sonolus/particles/:name", h.HandleParticleDetails)
	app.Get("/sonolus/engines/list", h.HandleEngineList)
	app.Get("/sonolus/engines/:name", h.HandleEngineDetails)

	app.Get("/repository/:area/:file", h.HandleRepositoryFile)
}

// HandleRoot redirects browsers to the deep link that opens this server in
// the client.
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return c.Redirect(h.service.cfg.OpenURL(utils.LocalIPv4()))
}

// HandleInfo serves the server info document.
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	return c.JSON(h.service.Info())
}

func list[T any](c *fiber.Ctx, items []T) error {
	return c.JSON(fiber.Map{
		"pageCount": 1,
		"items":     items,
	})
}

func details[T any](c *fiber.Ctx, item T, ok bool) error {
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(fiber.Map{
		"item":        item,
		"description": catalog.Text(""),
		"recommended": []any{},
	})
}

// HandleLevelList serves the level item list.
func (h *Handler) HandleLevelList(c *fiber.Ctx) error {
	return list(c, h.service.catalog.Levels())
}

// HandleLevelDetails serves one level's details.
func (h *Handler) HandleLevelDetails(c *fiber.Ctx) error {
	item, ok := h.service.catalog.Level(c.Params("name"))
	return details(c, item, ok)
}

// HandleSkinList serves the skin item list.
func (h *Handler) HandleSkinList(c *fiber.Ctx) error {
	return list(c, h.service.catalog.Skins())
}

// HandleSkinDetails serves one skin's details.
func (h *Handler) HandleSkinDetails(c *fiber.Ctx) error {
	item, ok := h.service.catalog.Skin(c.Params("name"))
	return details(c, item, ok)
}

// HandleBackgroundList serves the background item list.
func (h *Handler) HandleBackgroundList(c *fiber.Ctx) error {
	return list(c, h.service.catalog.Backgrounds())
}

// HandleBackgroundDetails serves one background's details.
func (h *Handler) HandleBackgroundDetails(c *fiber.Ctx) error {
	item, ok := h.service.catalog.Background(c.Params("name"))
	return details(c, item, ok)
}

// HandleEffectList serves the effect item list.
func (h *Handler) HandleEffectList(c *fiber.Ctx) error {
	return list(c, h.service.catalog.Effects())
}

// HandleEffectDetails serves one effect's details.
func (h *Handler) HandleEffectDetails(c *fiber.Ctx) error {
	item, ok := h.service.catalog.Effect(c.Params("name"))
	return details(c, item, ok)
}

// HandleParticleList serves the particle item list.
func (h *Handler) HandleParticleList(c *fiber.Ctx) error {
	return list(c, h.service.catalog.Particles())
}

// HandleParticleDetails serves one particle's details.
func (h *Handler) HandleParticleDetails(c *fiber.Ctx) error {
	item, ok := h.service.catalog.Particle(c.Params("name"))
	return details(c, item, ok)
}

// HandleEngineList serves the engine item list.
func (h *Handler) HandleEngineList(c *fiber.Ctx) error {
	return list(c, h.service.catalog.Engines())
}

// HandleEngineDetails serves one engine's details.
func (h *Handler) HandleEngineDetails(c *fiber.Ctx) error {
	item, ok := h.service.catalog.Engine(c.Params("name"))
	return details(c, item, ok)
}

// HandleRepositoryFile serves a blob from the content store.
func (h *Handler) HandleRepositoryFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	area := c.Params("area")
	file := c.Params("file")

	if !repository.ValidArea(area) {
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}
	if file == "" || strings.ContainsAny(file, "/\\") || strings.Contains(file, "..") {
		return c.Status(fiber.StatusBadRequest).SendString("Bad request")
	}

	path := h.service.store.FilePath(area, file)
	if err := c.SendFile(path); err != nil {
		l.Debug("Repository file not found",
			zap.String("area", area),
			zap.String("file", file))
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	}
	return nil
}

package sonolus

import (
	"score-sync/core/catalog"
	"score-sync/core/repository"
	"score-sync/core/server"

	"go.uber.org/zap"
)

// ServerInfo is the document served to connecting clients.
type ServerInfo struct {
	Title         catalog.LocalizedText `json:"title"`
	Description   catalog.LocalizedText `json:"description"`
	Buttons       []Button              `json:"buttons"`
	Configuration Configuration         `json:"configuration"`
	Banner        catalog.SRL           `json:"banner"`
}

// Button advertises one browsable item kind.
type Button struct {
	Type string `json:"type"`
}

// Configuration holds the client-facing server options.
type Configuration struct {
	Options []any `json:"options"`
}

// Service assembles serving-layer documents from the catalog.
type Service struct {
	catalog *catalog.Catalog
	store   *repository.Store
	cfg     server.Config
	logger  *zap.Logger
}

// NewService creates a new serving service.
func NewService(cat *catalog.Catalog, store *repository.Store, cfg server.Config, logger *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		store:   store,
		cfg:     cfg,
		logger:  logger,
	}
}

// Info builds the server info document.
func (s *Service) Info() ServerInfo {
	return ServerInfo{
		Title:       catalog.Text(s.cfg.Title),
		Description: catalog.Text(s.cfg.Description),
		Buttons: []Button{
			{Type: "level"},
			{Type: "skin"},
			{Type: "background"},
			{Type: "effect"},
			{Type: "particle"},
			{Type: "engine"},
			{Type: "configuration"},
		},
		Configuration: Configuration{Options: []any{}},
		Banner: catalog.SRL{
			Hash: "banner",
			URL:  repository.URL(repository.AreaBanner, "banner"),
		},
	}
}

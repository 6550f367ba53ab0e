package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"score-sync/core/catalog"
	"score-sync/core/repository"

	"go.uber.org/zap"
)

// Service orchestrates chart ingestion: discovery, conversion and publishing.
type Service struct {
	catalog *catalog.Catalog
	store   *repository.Store
	conv    Converter
	engine  string
	logger  *zap.Logger
}

// NewService creates a new chart ingestion service. Published levels reference
// the given engine name.
func NewService(cat *catalog.Catalog, store *repository.Store, conv Converter, engine string, logger *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		store:   store,
		conv:    conv,
		engine:  engine,
		logger:  logger,
	}
}

// assetSet holds the classified direct files of one chart directory.
// Recomputed on every scan.
type assetSet struct {
	scores   []string
	images   []string
	audio    []string
	manifest string
}

// classifyDir buckets a directory's direct files by extension. Unrecognized
// extensions are ignored.
func classifyDir(dir string) (assetSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return assetSet{}, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var assets assetSet
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch e := strings.ToLower(filepath.Ext(name)); {
		case scoreExts[e]:
			assets.scores = append(assets.scores, name)
		case imageExts[e]:
			assets.images = append(assets.images, name)
		case audioExts[e]:
			assets.audio = append(assets.audio, name)
		case strings.EqualFold(name, ManifestFilename):
			assets.manifest = name
		}
	}
	return assets, nil
}

// WalkAll ingests every immediate subdirectory of baseDir, one chart
// collection per subdirectory. Per-directory failures are logged and skipped.
func (s *Service) WalkAll(ctx context.Context, baseDir string) error {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("failed to list chart directory %s: %w", baseDir, err)
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, filepath.Join(baseDir, entry.Name()))
		}
	}

	if len(subdirs) == 0 {
		s.logger.Info("No chart collections found", zap.String("dir", baseDir))
		return nil
	}

	s.logger.Info("Found chart collections",
		zap.String("dir", baseDir),
		zap.Int("count", len(subdirs)))

	for _, dir := range subdirs {
		if err := s.IngestDirectory(ctx, dir); err != nil {
			s.logger.Error("Failed to ingest chart collection",
				zap.String("dir", dir),
				zap.Error(err))
		}
	}
	return nil
}

// IngestDirectory processes one chart directory: resolves the manifest,
// pairs and converts every score file, and publishes one level per score.
// Per-score failures are logged and do not abort sibling scores.
func (s *Service) IngestDirectory(ctx context.Context, dir string) error {
	assets, err := classifyDir(dir)
	if err != nil {
		return err
	}

	var manifest Manifest
	switch {
	case assets.manifest != "":
		m, err := LoadManifest(filepath.Join(dir, assets.manifest))
		if err != nil {
			s.logger.Warn("Failed to load manifest, using empty defaults",
				zap.String("dir", dir),
				zap.Error(err))
		} else {
			manifest = m
		}
	case len(assets.scores) > 0:
		// First encounter: persist a manifest seeded from the directory name
		// so the operator has something to edit. Best effort.
		manifest = DefaultManifest(filepath.Base(dir))
		path := filepath.Join(dir, ManifestFilename)
		if err := manifest.Save(path); err != nil {
			s.logger.Warn("Failed to write default manifest",
				zap.String("path", path),
				zap.Error(err))
		} else {
			s.logger.Info("Created default manifest", zap.String("path", path))
		}
	}

	for _, score := range assets.scores {
		if err := s.ingestScore(ctx, dir, assets, manifest, score); err != nil {
			s.logger.Error("Failed to ingest score",
				zap.String("file", filepath.Join(dir, score)),
				zap.Error(err))
		}
	}
	return nil
}

func (s *Service) ingestScore(ctx context.Context, dir string, assets assetSet, manifest Manifest, scoreFile string) error {
	scoreExt := filepath.Ext(scoreFile)
	baseName := strings.TrimSuffix(scoreFile, scoreExt)

	// A multi-score directory must not give every chart the directory's
	// title; default to the score's own base name instead.
	chart := manifest
	if chart.Title == "" || chart.Title == filepath.Base(dir) {
		chart.Title = baseName
	}

	cover := BestMatch(baseName, assets.images)
	if cover == "" && len(assets.images) > 0 {
		cover = assets.images[0]
		s.logger.Warn("No cover matched, using fallback",
			zap.String("chart", baseName),
			zap.String("cover", cover))
	}

	audio := BestMatch(baseName, assets.audio)
	if audio == "" && len(assets.audio) > 0 {
		audio = assets.audio[0]
		s.logger.Warn("No audio matched, using fallback",
			zap.String("chart", baseName),
			zap.String("audio", audio))
	}

	raw, err := os.ReadFile(filepath.Join(dir, scoreFile))
	if err != nil {
		return fmt.Errorf("failed to read score: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(scoreExt), ".")
	converted, err := s.conv.Convert(ctx, raw, format)
	if err != nil {
		return fmt.Errorf("failed to convert score: %w", err)
	}

	if err := s.store.WriteLevelData(ctx, baseName, converted); err != nil {
		return err
	}

	var coverName, bgmName string
	if cover != "" {
		coverName = baseName + filepath.Ext(cover)
		if err := s.store.CopyIn(ctx, repository.AreaCover, filepath.Join(dir, cover), coverName); err != nil {
			return err
		}
	}
	if audio != "" {
		bgmName = baseName + filepath.Ext(audio)
		if err := s.store.CopyIn(ctx, repository.AreaBgm, filepath.Join(dir, audio), bgmName); err != nil {
			return err
		}
	}

	s.catalog.UpsertLevel(s.buildLevel(baseName, chart, coverName, bgmName))
	s.logger.Info("Published level", zap.String("name", baseName))
	return nil
}

func (s *Service) buildLevel(baseName string, chart Manifest, coverName, bgmName string) catalog.LevelItem {
	item := catalog.LevelItem{
		Name:          baseName,
		Version:       catalog.LevelVersion,
		Title:         catalog.Text(chart.Title),
		Artists:       catalog.Text(chart.Artists),
		Author:        catalog.Text(chart.Author),
		Rating:        chart.Rating,
		Tags:          catalog.Tags(chart.Tags),
		Engine:        s.engine,
		Description:   catalog.Text("Updated at: " + time.Now().Format("2006/01/02 15:04:05")),
		UseSkin:       catalog.UseItem{UseDefault: true},
		UseBackground: catalog.UseItem{UseDefault: true},
		UseEffect:     catalog.UseItem{UseDefault: true},
		UseParticle:   catalog.UseItem{UseDefault: true},
		Data: catalog.SRL{
			Hash: "level",
			URL:  repository.URL(repository.AreaLevel, baseName),
		},
	}
	if coverName != "" {
		item.Cover = catalog.SRL{Hash: "cover", URL: repository.URL(repository.AreaCover, coverName)}
	}
	if bgmName != "" {
		item.Bgm = catalog.SRL{Hash: "bgm", URL: repository.URL(repository.AreaBgm, bgmName)}
	}
	return item
}

// Reconvert refreshes the stored level data for a single score file without
// re-running asset matching or manifest resolution. Used by the watcher.
func (s *Service) Reconvert(ctx context.Context, path string) error {
	scoreExt := filepath.Ext(path)
	baseName := strings.TrimSuffix(filepath.Base(path), scoreExt)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read score: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(scoreExt), ".")
	converted, err := s.conv.Convert(ctx, raw, format)
	if err != nil {
		return fmt.Errorf("failed to convert score: %w", err)
	}

	if err := s.store.WriteLevelData(ctx, baseName, converted); err != nil {
		return err
	}
	s.logger.Info("Refreshed level data", zap.String("name", baseName))
	return nil
}

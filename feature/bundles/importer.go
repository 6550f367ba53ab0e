package bundles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"score-sync/core/catalog"

	"go.uber.org/zap"
)

// Reserved entries under sonolus/levels that are not level manifests.
var reservedLevelEntries = map[string]bool{
	"list": true,
	"info": true,
}

// Importer merges pre-built bundles into the catalog.
type Importer struct {
	catalog *catalog.Catalog
	cfg     Config
	logger  *zap.Logger
}

// NewImporter creates a bundle importer.
func NewImporter(cat *catalog.Catalog, cfg Config, logger *zap.Logger) *Importer {
	return &Importer{
		catalog: cat,
		cfg:     cfg,
		logger:  logger,
	}
}

// ImportAll extracts and imports every .scp bundle in the configured
// directory, sequentially, and returns the total number of levels added.
// A missing bundle directory is created and reported, not an error.
func (im *Importer) ImportAll() (int, error) {
	if _, err := os.Stat(im.cfg.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(im.cfg.Dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create bundle directory: %w", err)
		}
		im.logger.Info("Created bundle directory", zap.String("dir", im.cfg.Dir))
		return 0, nil
	}

	entries, err := os.ReadDir(im.cfg.Dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list bundle directory: %w", err)
	}

	var archives []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".scp") {
			archives = append(archives, entry.Name())
		}
	}

	if len(archives) == 0 {
		im.logger.Info("No bundles found", zap.String("dir", im.cfg.Dir))
		return 0, nil
	}

	im.logger.Info("Found bundles", zap.Int("count", len(archives)))

	total := 0
	for _, name := range archives {
		added, err := im.importArchive(name)
		if err != nil {
			im.logger.Error("Failed to import bundle",
				zap.String("bundle", name),
				zap.Error(err))
			continue
		}
		im.logger.Info("Imported bundle",
			zap.String("bundle", name),
			zap.Int("levels_added", added))
		total += added
	}
	return total, nil
}

// importArchive extracts one archive (skipped when already extracted) and
// merges its levels.
func (im *Importer) importArchive(name string) (int, error) {
	packageName := strings.TrimSuffix(name, ".scp")
	extractPath := filepath.Join(im.cfg.ExtractDir, packageName)

	if _, err := os.Stat(extractPath); os.IsNotExist(err) {
		im.logger.Info("Extracting bundle", zap.String("bundle", name))
		if err := extract(filepath.Join(im.cfg.Dir, name), extractPath); err != nil {
			return 0, err
		}
	}

	return im.importPackage(extractPath)
}

// importPackage merges every level manifest of an extracted package into the
// catalog. Per-manifest failures are logged and skipped. Returns the number
// of levels actually added.
func (im *Importer) importPackage(extractPath string) (int, error) {
	levelsDir := filepath.Join(extractPath, "sonolus", "levels")
	entries, err := os.ReadDir(levelsDir)
	if err != nil {
		return 0, fmt.Errorf("bundle has no levels directory: %w", err)
	}

	added := 0
	for _, entry := range entries {
		if entry.IsDir() || reservedLevelEntries[entry.Name()] {
			continue
		}

		doc, err := readLevelDoc(filepath.Join(levelsDir, entry.Name()))
		if err != nil {
			im.logger.Error("Skipping level manifest",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}

		if im.merge(doc) {
			added++
		}
	}
	return added, nil
}

// merge adds the level and its engine's constituents to the catalog,
// each kind independently, existing names winning. Reports whether the
// level itself was added.
func (im *Importer) merge(doc levelDoc) bool {
	eng := doc.Item.Engine

	im.catalog.PutSkin(eng.Skin.item())
	im.catalog.PutBackground(eng.Background.item())
	im.catalog.PutEffect(eng.Effect.item())
	im.catalog.PutParticle(eng.Particle.item())
	im.catalog.PutEngine(eng.item())

	return im.catalog.PutLevel(doc.item())
}

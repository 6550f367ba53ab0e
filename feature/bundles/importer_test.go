package bundles_test

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"score-sync/core/catalog"
	"score-sync/feature/bundles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// levelJSON builds a minimal level manifest document with a full engine
// definition, parameterized by resource names.
func levelJSON(level, engine, skin string) string {
	part := func(name string) string {
		return fmt.Sprintf(`{
			"name": %q, "version": 0, "title": %q,
			"thumbnail": {"hash": "t", "url": "/sonolus/repository/t"},
			"data": {"hash": "d", "url": "/sonolus/repository/d"},
			"texture": {"hash": "x", "url": "/sonolus/repository/x"},
			"image": {"hash": "i", "url": "/sonolus/repository/i"},
			"configuration": {"hash": "c", "url": "/sonolus/repository/c"},
			"audio": {"hash": "a", "url": "/sonolus/repository/a"}
		}`, name, name)
	}
	return fmt.Sprintf(`{
		"item": {
			"name": %q,
			"version": 1,
			"title": %q,
			"artists": "artist",
			"rating": 27,
			"tags": [{"title": "master"}],
			"engine": {
				"name": %q, "version": 0, "title": %q,
				"skin": %s,
				"background": %s,
				"effect": %s,
				"particle": %s,
				"thumbnail": {"hash": "t", "url": "/sonolus/repository/t"},
				"playData": {"hash": "p", "url": "/sonolus/repository/p"},
				"watchData": {"hash": "w", "url": "/sonolus/repository/w"},
				"previewData": {"hash": "v", "url": "/sonolus/repository/v"},
				"tutorialData": {"hash": "u", "url": "/sonolus/repository/u"},
				"configuration": {"hash": "c", "url": "/sonolus/repository/c"}
			},
			"cover": {"hash": "cv", "url": "/sonolus/repository/cv"},
			"data": {"hash": "dt", "url": "/sonolus/repository/dt"},
			"bgm": {"hash": "bg", "url": "/sonolus/repository/bg"}
		}
	}`, level, level, engine, engine,
		part(skin), part(engine+"-bg"), part(engine+"-fx"), part(engine+"-pt"))
}

// makeBundle writes a .scp archive containing the given level manifests.
func makeBundle(t *testing.T, dir, name string, levels map[string]string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, reserved := range []string{"list", "info"} {
		entry, err := w.Create("sonolus/levels/" + reserved)
		require.NoError(t, err)
		_, err = entry.Write([]byte("{}"))
		require.NoError(t, err)
	}
	for file, content := range levels {
		entry, err := w.Create("sonolus/levels/" + file)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	blob, err := w.Create("sonolus/repository/abc123")
	require.NoError(t, err)
	_, err = blob.Write([]byte("blob-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func newImporter(t *testing.T) (*bundles.Importer, *catalog.Catalog, bundles.Config) {
	t.Helper()
	cfg := bundles.Config{
		Dir:        filepath.Join(t.TempDir(), "scp"),
		ExtractDir: filepath.Join(t.TempDir(), "extracted"),
	}
	require.NoError(t, os.MkdirAll(cfg.Dir, 0o755))
	cat := catalog.New()
	return bundles.NewImporter(cat, cfg, zap.NewNop()), cat, cfg
}

func TestImportAllMissingDirectoryIsCreated(t *testing.T) {
	cfg := bundles.Config{
		Dir:        filepath.Join(t.TempDir(), "does-not-exist-yet"),
		ExtractDir: t.TempDir(),
	}
	im := bundles.NewImporter(catalog.New(), cfg, zap.NewNop())

	added, err := im.ImportAll()
	require.NoError(t, err)
	assert.Zero(t, added)

	info, err := os.Stat(cfg.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestImportAllMergesFullEngineTree(t *testing.T) {
	im, cat, cfg := newImporter(t)
	makeBundle(t, cfg.Dir, "pack.scp", map[string]string{
		"level-one": levelJSON("level-one", "pjsekai", "pjsekai-skin"),
	})

	added, err := im.ImportAll()
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	level, ok := cat.Level("level-one")
	require.True(t, ok)
	assert.Equal(t, "pjsekai", level.Engine)
	assert.Equal(t, 27, level.Rating)
	assert.Equal(t, catalog.LevelVersion, level.Version)

	skin, ok := cat.Skin("pjsekai-skin")
	require.True(t, ok)
	assert.Equal(t, catalog.SkinVersion, skin.Version)

	engine, ok := cat.Engine("pjsekai")
	require.True(t, ok)
	assert.Equal(t, catalog.EngineVersion, engine.Version)
	assert.Equal(t, "pjsekai-skin", engine.Skin)

	_, ok = cat.Background("pjsekai-bg")
	assert.True(t, ok)
	_, ok = cat.Effect("pjsekai-fx")
	assert.True(t, ok)
	_, ok = cat.Particle("pjsekai-pt")
	assert.True(t, ok)
}

func TestImportAllIsIdempotent(t *testing.T) {
	im, cat, cfg := newImporter(t)
	makeBundle(t, cfg.Dir, "pack.scp", map[string]string{
		"level-one": levelJSON("level-one", "pjsekai", "pjsekai-skin"),
		"level-two": levelJSON("level-two", "pjsekai", "pjsekai-skin"),
	})

	added, err := im.ImportAll()
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	before := cat.Counts()

	added, err = im.ImportAll()
	require.NoError(t, err)
	assert.Zero(t, added, "second import must add nothing")
	assert.Equal(t, before, cat.Counts())
}

func TestImportAllFirstWriterWinsAcrossBundles(t *testing.T) {
	im, cat, cfg := newImporter(t)

	// Both bundles define "shared-skin" under different engines. Bundle
	// names sort "a" first, so its definition wins.
	a := levelJSON("level-a", "engine-a", "shared-skin")
	b := levelJSON("level-b", "engine-b", "shared-skin")
	makeBundle(t, cfg.Dir, "a.scp", map[string]string{"level-a": a})
	makeBundle(t, cfg.Dir, "b.scp", map[string]string{"level-b": b})

	added, err := im.ImportAll()
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	skins := cat.Skins()
	count := 0
	for _, s := range skins {
		if s.Name == "shared-skin" {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one shared-skin entry")

	_, ok := cat.Engine("engine-a")
	assert.True(t, ok)
	_, ok = cat.Engine("engine-b")
	assert.True(t, ok, "a new engine may reuse an already-present skin")
}

func TestImportAllSkipsMalformedManifests(t *testing.T) {
	im, cat, cfg := newImporter(t)
	makeBundle(t, cfg.Dir, "pack.scp", map[string]string{
		"broken": `{not json`,
		"empty":  `{"item": {"name": ""}}`,
		"good":   levelJSON("good", "pjsekai", "pjsekai-skin"),
	})

	added, err := im.ImportAll()
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	_, ok := cat.Level("good")
	assert.True(t, ok)
	assert.Len(t, cat.Levels(), 1)
}

func TestImportAllSkipsReservedEntries(t *testing.T) {
	im, cat, cfg := newImporter(t)
	makeBundle(t, cfg.Dir, "pack.scp", map[string]string{})

	added, err := im.ImportAll()
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Empty(t, cat.Levels())
}

func TestImportAllLevelDocShape(t *testing.T) {
	// The manifest wire shape must match the documented bundle contract.
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(levelJSON("l", "e", "s")), &doc))
	item, ok := doc["item"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, item, "engine")
	assert.Contains(t, item, "cover")
	assert.Contains(t, item, "data")
	assert.Contains(t, item, "bgm")
}

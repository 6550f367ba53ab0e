package catalog_test

import (
	"testing"

	"score-sync/core/catalog"

	"github.com/stretchr/testify/assert"
)

func TestPutRejectsDuplicateNames(t *testing.T) {
	c := catalog.New()

	first := catalog.SkinItem{Name: "shared-skin", Version: catalog.SkinVersion, Title: catalog.Text("First")}
	second := catalog.SkinItem{Name: "shared-skin", Version: catalog.SkinVersion, Title: catalog.Text("Second")}

	assert.True(t, c.PutSkin(first))
	assert.False(t, c.PutSkin(second))

	got, ok := c.Skin("shared-skin")
	assert.True(t, ok)
	assert.Equal(t, "First", got.Title.En, "existing entry must win")
	assert.Len(t, c.Skins(), 1)
}

func TestPutLevelIsIndependentPerKind(t *testing.T) {
	c := catalog.New()

	assert.True(t, c.PutEngine(catalog.EngineItem{Name: "same-name"}))
	assert.True(t, c.PutLevel(catalog.LevelItem{Name: "same-name"}))
	assert.False(t, c.PutLevel(catalog.LevelItem{Name: "same-name"}))
}

func TestUpsertLevelReplacesInPlace(t *testing.T) {
	c := catalog.New()

	c.UpsertLevel(catalog.LevelItem{Name: "a", Title: catalog.Text("one")})
	c.UpsertLevel(catalog.LevelItem{Name: "b", Title: catalog.Text("two")})
	c.UpsertLevel(catalog.LevelItem{Name: "a", Title: catalog.Text("updated")})

	levels := c.Levels()
	assert.Len(t, levels, 2)
	assert.Equal(t, "a", levels[0].Name, "replacement keeps insertion order")
	assert.Equal(t, "updated", levels[0].Title.En)
	assert.Equal(t, "two", levels[1].Title.En)
}

func TestSnapshotsAreCopies(t *testing.T) {
	c := catalog.New()
	c.PutLevel(catalog.LevelItem{Name: "a", Title: catalog.Text("original")})

	snapshot := c.Levels()
	snapshot[0].Title = catalog.Text("mutated")

	got, ok := c.Level("a")
	assert.True(t, ok)
	assert.Equal(t, "original", got.Title.En)
}

func TestCounts(t *testing.T) {
	c := catalog.New()
	c.PutSkin(catalog.SkinItem{Name: "s"})
	c.PutLevel(catalog.LevelItem{Name: "l1"})
	c.PutLevel(catalog.LevelItem{Name: "l2"})

	counts := c.Counts()
	assert.Equal(t, 1, counts["skins"])
	assert.Equal(t, 2, counts["levels"])
	assert.Equal(t, 0, counts["engines"])
}

func TestTagsAlwaysNonNil(t *testing.T) {
	assert.NotNil(t, catalog.Tags(nil))
	assert.Len(t, catalog.Tags([]string{"master", "append"}), 2)
}

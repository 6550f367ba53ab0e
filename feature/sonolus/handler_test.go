package sonolus_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"score-sync/core/catalog"
	"score-sync/core/repository"
	"score-sync/core/server"
	"score-sync/feature/sonolus"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *catalog.Catalog, *repository.Store) {
	t.Helper()
	cat := catalog.New()
	store := repository.NewStore(repository.Config{Root: t.TempDir()}, zap.NewNop())
	cfg := server.Config{Port: "3939", Title: "Score Sync", Description: "test server"}

	app := fiber.New()
	feature := sonolus.NewFeature(cat, store, cfg, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, cat, store
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestHandleInfo(t *testing.T) {
	app, _, _ := setupTestApp(t)

	status, body := getJSON(t, app, "/sonolus/info")
	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]any{"en": "Score Sync"}, body["title"])
	assert.Len(t, body["buttons"], 7)
}

func TestHandleLevelList(t *testing.T) {
	app, cat, _ := setupTestApp(t)
	cat.PutLevel(catalog.LevelItem{Name: "chart-a", Title: catalog.Text("A")})
	cat.PutLevel(catalog.LevelItem{Name: "chart-b", Title: catalog.Text("B")})

	status, body := getJSON(t, app, "/sonolus/levels/list")
	assert.Equal(t, 200, status)
	assert.EqualValues(t, 1, body["pageCount"])
	assert.Len(t, body["items"], 2)
}

func TestHandleLevelDetails(t *testing.T) {
	app, cat, _ := setupTestApp(t)
	cat.PutLevel(catalog.LevelItem{Name: "chart", Title: catalog.Text("Chart")})

	t.Run("Found", func(t *testing.T) {
		status, body := getJSON(t, app, "/sonolus/levels/chart")
		assert.Equal(t, 200, status)
		item, ok := body["item"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "chart", item["name"])
	})

	t.Run("Missing", func(t *testing.T) {
		status, _ := getJSON(t, app, "/sonolus/levels/nope")
		assert.Equal(t, 404, status)
	})
}

func TestHandleItemListsPerKind(t *testing.T) {
	app, cat, _ := setupTestApp(t)
	sonolus.Install(cat)

	for path, want := range map[string]int{
		"/sonolus/skins/list":       2,
		"/sonolus/particles/list":   2,
		"/sonolus/effects/list":     1,
		"/sonolus/engines/list":     1,
		"/sonolus/backgrounds/list": 0,
	} {
		status, body := getJSON(t, app, path)
		assert.Equal(t, 200, status, path)
		assert.Len(t, body["items"], want, path)
	}
}

func TestHandleRepositoryFile(t *testing.T) {
	app, _, store := setupTestApp(t)
	require.NoError(t, store.Write(context.Background(), repository.AreaCover, "chart.png", []byte("png")))

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/repository/cover/chart.png", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("UnknownArea", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/repository/secrets/chart.png", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("MissingFile", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/repository/cover/nope.png", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("RejectsTraversal", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/repository/cover/..secret", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleRoot(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "open.sonolus.com")
	assert.Contains(t, resp.Header.Get("Location"), ":3939")
}

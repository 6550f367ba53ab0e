package charts_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"score-sync/core/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReconvertsChangedScore(t *testing.T) {
	fx := newFixture(t)
	base := t.TempDir()
	dir := filepath.Join(base, "collection")
	require.NoError(t, os.Mkdir(dir, 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fx.service.Watch(ctx, base)
	}()

	// Give the watcher a moment to establish the subscription.
	time.Sleep(200 * time.Millisecond)

	writeFile(t, dir, "chart.usc", "watched-score")

	assert.Eventually(t, func() bool {
		_, err := os.Stat(fx.store.FilePath(repository.AreaLevel, "chart"))
		return err == nil
	}, 5*time.Second, 50*time.Millisecond, "level data should appear after a score write")

	assert.Contains(t, readLevelData(t, fx.store, "chart"), "watched-score")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatchIgnoresNonScoreFiles(t *testing.T) {
	fx := newFixture(t)
	base := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = fx.service.Watch(ctx, base) }()
	time.Sleep(200 * time.Millisecond)

	writeFile(t, base, "cover.png", "png-bytes")
	time.Sleep(500 * time.Millisecond)

	_, err := os.Stat(fx.store.FilePath(repository.AreaLevel, "cover"))
	assert.True(t, os.IsNotExist(err))
}

func TestWatchFailsOnMissingBase(t *testing.T) {
	fx := newFixture(t)
	err := fx.service.Watch(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

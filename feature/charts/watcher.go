package charts

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch subscribes to file-system changes under baseDir (recursively) and
// re-converts a chart's level data whenever one of its score files is written
// or created. Other changes (covers, audio, manifests) are left to the next
// full ingestion. Watch blocks until ctx is cancelled; only a failure to
// establish the subscription is returned.
func (s *Service) Watch(ctx context.Context, baseDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, baseDir); err != nil {
		return err
	}

	s.logger.Info("Watching chart directory", zap.String("dir", baseDir))

	// Events are handled to completion one at a time, in receipt order, so
	// two changes to the same file apply in order.
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleEvent(ctx, watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (s *Service) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	// New chart collection directories must be watched as they appear.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				s.logger.Error("Failed to watch new directory",
					zap.String("dir", event.Name),
					zap.Error(err))
			}
			return
		}
	}

	if !IsScoreFile(event.Name) {
		return
	}

	s.logger.Info("Score file changed", zap.String("file", event.Name))
	if err := s.Reconvert(ctx, event.Name); err != nil {
		s.logger.Error("Failed to refresh changed score",
			zap.String("file", event.Name),
			zap.Error(err))
	}
}

func addRecursive(watcher *fsnotify.Watcher, baseDir string) error {
	return filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

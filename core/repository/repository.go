package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"score-sync/core/storage"

	"github.com/klauspost/compress/gzip"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Resource areas under the store root.
const (
	AreaLevel      = "level"
	AreaCover      = "cover"
	AreaBgm        = "bgm"
	AreaEngine     = "engine"
	AreaBanner     = "banner"
	AreaSkin       = "skin"
	AreaBackground = "background"
	AreaEffect     = "effect"
	AreaParticle   = "particle"
)

// Areas lists every valid resource area, in serving order.
var Areas = []string{
	AreaLevel, AreaCover, AreaBgm, AreaEngine, AreaBanner,
	AreaSkin, AreaBackground, AreaEffect, AreaParticle,
}

// Store is the file-backed content store. All writes go through it so the
// optional object-storage mirror sees every blob.
type Store struct {
	root   string
	logger *zap.Logger

	mirror storage.Client
	bucket string
}

// NewStore creates a store rooted at cfg.Root. The mirror client may be nil.
func NewStore(cfg Config, logger *zap.Logger) *Store {
	return &Store{
		root:   cfg.Root,
		logger: logger,
	}
}

// WithMirror enables mirroring of every written blob to the given bucket.
func (s *Store) WithMirror(client storage.Client, bucket string) *Store {
	s.mirror = client
	s.bucket = bucket
	return s
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// EnsureLayout creates every area directory under the root.
func (s *Store) EnsureLayout() error {
	for _, area := range Areas {
		if err := os.MkdirAll(filepath.Join(s.root, area), 0o755); err != nil {
			return fmt.Errorf("failed to create %s area: %w", area, err)
		}
	}
	return nil
}

// ValidArea reports whether name is a known resource area.
func ValidArea(name string) bool {
	for _, area := range Areas {
		if area == name {
			return true
		}
	}
	return false
}

// FilePath returns the on-disk path for a stored blob.
func (s *Store) FilePath(area, name string) string {
	return filepath.Join(s.root, area, name)
}

// URL returns the serving URL for a stored blob.
func URL(area, name string) string {
	return "/repository/" + area + "/" + name
}

// WriteLevelData gzips the converted chart data and writes it to the level
// area under the chart's base name, replacing any previous version.
func (s *Store) WriteLevelData(ctx context.Context, name string, converted []byte) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(converted); err != nil {
		return fmt.Errorf("failed to compress level data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to compress level data: %w", err)
	}
	return s.Write(ctx, AreaLevel, name, buf.Bytes())
}

// Write stores a blob in the given area and mirrors it if configured.
func (s *Store) Write(ctx context.Context, area, name string, data []byte) error {
	path := s.FilePath(area, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s area: %w", area, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", area, name, err)
	}
	s.mirrorObject(ctx, area, name, data)
	return nil
}

// CopyIn copies an external file into an area under the given name.
func (s *Store) CopyIn(ctx context.Context, area, srcPath, name string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", srcPath, err)
	}
	return s.Write(ctx, area, name, data)
}

// Open opens a stored blob for reading.
func (s *Store) Open(area, name string) (io.ReadCloser, error) {
	return os.Open(s.FilePath(area, name))
}

func (s *Store) mirrorObject(ctx context.Context, area, name string, data []byte) {
	if s.mirror == nil {
		return
	}
	object := area + "/" + name
	_, err := s.mirror.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		s.logger.Warn("Failed to mirror object to storage",
			zap.String("object", object),
			zap.Error(err))
		return
	}
	s.logger.Debug("Mirrored object to storage", zap.String("object", object))
}

// Package repository implements the on-disk content store that ingestion
// writes to and the serving layer reads from.
//
// # Layout
//
// One directory per resource area under a fixed root (default lib/repository):
//
//	level/   — gzip-compressed converted level data, named by chart base name
//	cover/   — cover images, named <baseName><original extension>
//	bgm/     — audio tracks, named <baseName><original extension>
//	engine/  — engine behavior blobs and thumbnails
//	banner/  — the server banner
//
// Files are keyed by name, not by content hash; overwriting level data for
// the same base name is expected and last write wins.
//
// # Mirroring
//
// When object storage is enabled in the configuration, every blob written to
// the local store is also uploaded to the configured bucket under
// <area>/<name>. Mirroring is best-effort: upload failures are logged and do
// not fail the write.
package repository

// Package catalog holds the in-memory registry of publishable Sonolus content.
//
// The Catalog is the single source of truth read by the serving layer. It keeps
// one ordered, name-unique collection per item kind (skin, background, effect,
// particle, engine, level) and offers two write paths:
//
//   - Put* operations merge-if-absent: a duplicate name is a no-op and the
//     existing entry wins. Bundle importing relies on this to stay idempotent
//     across process restarts.
//   - UpsertLevel replaces an existing level of the same name. Directory
//     ingestion uses it so that editing a chart re-publishes it.
//
// # Concurrency
//
// The registry is guarded by an RWMutex: the file watcher mutates it while the
// HTTP server reads it. Read accessors return copies, never internal slices.
package catalog

// Package bundles implements importing of pre-built content bundles (.scp).
//
// A bundle is a zip archive holding already-converted content: per-level
// manifest documents under sonolus/levels (minus the reserved "list" and
// "info" entries) and the referenced blobs under sonolus/repository, keyed by
// content hash.
//
// # Merge semantics
//
// Importing walks every level manifest and merges each referenced named
// resource into the catalog in dependency order: skin, background, effect,
// particle, then the engine, then the level itself. Each kind is checked
// independently, and a name collision is a silent no-op — the existing entry
// wins. Re-importing the same bundle set after a restart therefore never
// produces duplicates, and extraction is skipped when the target directory
// already exists.
//
// # Serving
//
// The feature also registers GET /sonolus/repository/:hash, which resolves a
// blob by scanning every extracted package's repository directory.
package bundles

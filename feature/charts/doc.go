// Package charts implements chart discovery, conversion and publishing.
//
// A chart directory holds one or more score files (.usc, .sus) together with
// cover images, audio tracks and an optional config.json manifest. Ingestion
// classifies the directory's files, pairs each score with its best-matching
// cover and audio by filename, converts the score through the external
// converter, writes the compressed result into the content store and
// publishes a level into the catalog.
//
// # Components
//
//   - BestMatch: the pure filename pairing heuristic.
//   - Manifest: tolerant loading and synthesis of per-directory config.json.
//   - Service.WalkAll: full ingestion of every chart collection under a base
//     directory, run once at start-up.
//   - Service.Watch: the long-lived file watcher that re-converts a chart's
//     level data whenever its score file changes on disk.
//   - Converter: the boundary to the external score conversion tool.
package charts

// Package sonolus implements the serving layer for the Sonolus client.
//
// It exposes the server info document, the per-kind item lists and details
// backed by the catalog, and the content-store file routes. The package also
// installs the statically-registered default engine and its companion skins,
// particles and effect into the catalog at start-up; directory-ingested
// levels reference this engine.
//
// # HTTP Endpoints
//
//   - GET /                          : redirect to the open.sonolus.com deep link.
//   - GET /sonolus/info              : server info (title, buttons, banner).
//   - GET /sonolus/<kind>s/list      : item list for a kind (levels, skins, ...).
//   - GET /sonolus/<kind>s/:name     : single item details.
//   - GET /repository/:area/:file    : content-store blobs (level data, covers, bgm).
package sonolus

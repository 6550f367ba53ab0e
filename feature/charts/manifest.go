package charts

import (
	"encoding/json"
	"fmt"
	"os"

	"score-sync/core/utils"
)

// ManifestFilename is the reserved per-directory configuration filename.
const ManifestFilename = "config.json"

// Manifest is the per-directory chart configuration. All fields are optional
// on disk; a missing manifest is synthesized from the directory name on first
// ingestion.
type Manifest struct {
	Title   string   `json:"title"`
	Artists string   `json:"artists"`
	Author  string   `json:"author"`
	Rating  int      `json:"rating"`
	Tags    []string `json:"tags,omitempty"`
}

// UnmarshalJSON accepts loosely-typed documents: ratings may be numbers or
// strings, text fields may be any scalar. Unknown fields are ignored.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	m.Title = utils.ToString(doc["title"])
	m.Artists = utils.ToString(doc["artists"])
	m.Author = utils.ToString(doc["author"])
	m.Rating = utils.ToInt(doc["rating"])
	m.Tags = utils.ToStrings(doc["tags"])
	return nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}

// DefaultManifest synthesizes the manifest written on first ingestion of a
// directory that has scores but no config.json.
func DefaultManifest(dirName string) Manifest {
	return Manifest{Title: dirName}
}

// Save writes the manifest to disk, indented for manual editing.
func (m Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

package record

import (
	"encoding/json"
	"fmt"
	"os"

	"rig-renderer/internal/rig"
)

// ManifestEntry describes one recorded frame.
type ManifestEntry struct {
	Frame int             `json:"frame"`
	Image string          `json:"image"`
	Keys  string          `json:"keys"`
	Parts []rig.PartState `json:"parts"`
}

// Manifest is written next to the frames as manifest.json.
type Manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Frames []ManifestEntry `json:"frames"`
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("record: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("record: manifest: %w", err)
	}
	return nil
}

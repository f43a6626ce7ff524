// file: internal/sidecar/sidecar.go
// version: 1.0.0
// guid: 8d9e0f1a-2b3c-4d5e-6f7a-8b9c0d1e2f3a

// Package sidecar reads and writes the per-group metadata.json record. A
// sidecar found at scan time is adopted as canonical verbatim and
// reconciliation is bypassed for that group.
package sidecar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdfalk/audiobook-curator/internal/models"
)

// Filename is the sidecar file name inside a group directory.
const Filename = "metadata.json"

// Path returns the sidecar path for a group directory.
func Path(dir string) string {
	return filepath.Join(dir, Filename)
}

// Load reads a group's sidecar record. The second return is false when no
// sidecar exists; a present-but-unreadable sidecar is an error so a corrupt
// record is never silently rebuilt over.
func Load(dir string) (models.BookMetadata, bool, error) {
	var meta models.BookMetadata
	data, err := os.ReadFile(Path(dir))
	if os.IsNotExist(err) {
		return meta, false, nil
	}
	if err != nil {
		return meta, false, fmt.Errorf("failed to read sidecar: %w", err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, false, fmt.Errorf("failed to parse sidecar %s: %w", Path(dir), err)
	}
	return meta, true, nil
}

// Save writes the canonical record to the group's sidecar path. The write
// goes through a temp file and rename so a crash never leaves a truncated
// record.
func Save(dir string, meta *models.BookMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sidecar: %w", err)
	}
	tmp := Path(dir) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sidecar: %w", err)
	}
	if err := os.Rename(tmp, Path(dir)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize sidecar: %w", err)
	}
	return nil
}

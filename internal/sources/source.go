// file: internal/sources/source.go
// version: 1.0.0
// guid: d4e5f6a7-b8c9-0d1e-2f3a-4b5c6d7e8f9a

// Package sources defines the metadata source adapters the reconciler
// consumes. Each adapter is independently fallible: a failed search
// contributes nothing to the merge and never aborts it.
package sources

import "context"

// Record is a best-effort partial metadata record from one source.
// Every field is optional; empty means the source had nothing to say.
type Record struct {
	Source         string   `json:"source"`
	Title          string   `json:"title,omitempty"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Author         string   `json:"author,omitempty"`
	Narrator       string   `json:"narrator,omitempty"`
	Series         string   `json:"series,omitempty"`
	Sequence       string   `json:"sequence,omitempty"`
	Genres         []string `json:"genres,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	ReleaseDate    string   `json:"release_date,omitempty"` // YYYY or YYYY-MM-DD
	Description    string   `json:"description,omitempty"`
	ISBN           string   `json:"isbn,omitempty"`
	ASIN           string   `json:"asin,omitempty"`
	Language       string   `json:"language,omitempty"`
	CoverURL       string   `json:"cover_url,omitempty"`
	CoverWidth     int      `json:"cover_width,omitempty"`
	CoverHeight    int      `json:"cover_height,omitempty"`
	Abridged       bool     `json:"abridged,omitempty"`
	RuntimeMinutes int      `json:"runtime_minutes,omitempty"`
}

// Source is one independent origin of candidate metadata. Implementations
// must not share mutable state with other adapters. A nil record with nil
// error means "no match".
type Source interface {
	Name() string
	Search(ctx context.Context, title, author string) ([]Record, error)
}

// file: internal/models/book.go
// version: 1.1.0
// guid: 4d5e6f7a-8b9c-0d1e-2f3a-4b5c6d7e8f9a

package models

import "strings"

// GroupType classifies how the files of one book are laid out on disk.
type GroupType string

const (
	// GroupSingle is a single-file book (typically one .m4b).
	GroupSingle GroupType = "single"
	// GroupChapters is a chaptered rip (one file per chapter).
	GroupChapters GroupType = "chapters"
	// GroupMultiPart is a multi-part rip (part/disc/CD splits).
	GroupMultiPart GroupType = "multipart"
)

// GroupState tracks a book group's progress through reconciliation.
type GroupState string

const (
	// StateNotScanned is the initial state for a freshly discovered group.
	StateNotScanned GroupState = "not_scanned"
	// StateLoadedFromFile means a sidecar record was adopted verbatim and
	// reconciliation is skipped for this group.
	StateLoadedFromFile GroupState = "loaded_from_file"
	// StateMerging means source records are being merged.
	StateMerging GroupState = "merging"
	// StateReconciled means canonical metadata has been produced.
	StateReconciled GroupState = "reconciled"
)

// FileStatus tracks the per-file tag write lifecycle.
type FileStatus string

const (
	FileUnchanged FileStatus = "unchanged"
	FilePending   FileStatus = "pending"
	FileWritten   FileStatus = "written"
	FileFailed    FileStatus = "failed"
)

// MetadataChange records an old/new pair for one tag field of one file.
type MetadataChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// BookMetadata is the canonical, reconciled record for one book group.
// Genres is capped at 3 entries drawn from the approved taxonomy.
type BookMetadata struct {
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Author         string   `json:"author"`
	Narrator       string   `json:"narrator,omitempty"`
	Series         string   `json:"series,omitempty"`
	Sequence       string   `json:"sequence,omitempty"` // string to allow "2.5"
	Genres         []string `json:"genres,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	Year           string   `json:"year,omitempty"` // 4-digit, 1800-2100
	Description    string   `json:"description,omitempty"`
	ISBN           string   `json:"isbn,omitempty"`
	ASIN           string   `json:"asin,omitempty"`
	Language       string   `json:"language,omitempty"`
	CoverURL       string   `json:"cover_url,omitempty"`
	CoverCacheKey  string   `json:"cover_cache_key,omitempty"`
	CoverMIMEType  string   `json:"cover_mime_type,omitempty"`
	Abridged       bool     `json:"abridged,omitempty"`
	RuntimeMinutes int      `json:"runtime_minutes,omitempty"`
}

// GenreString joins genres with ", " for single-valued tag comparison.
func (m *BookMetadata) GenreString() string {
	return strings.Join(m.Genres, ", ")
}

// AudioFile is one physical file belonging to a book group.
type AudioFile struct {
	Path     string                    `json:"path"`
	Name     string                    `json:"name"`
	Changes  map[string]MetadataChange `json:"changes,omitempty"`
	Status   FileStatus                `json:"status"`
	WriteErr string                    `json:"write_error,omitempty"`
}

// BookGroup is the cluster of on-disk files judged to constitute one book.
// It exclusively owns its AudioFile list and its single BookMetadata.
type BookGroup struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Dir      string       `json:"dir"`
	Type     GroupType    `json:"type"`
	State    GroupState   `json:"state"`
	Metadata BookMetadata `json:"metadata"`
	Files    []*AudioFile `json:"files"`
}

// TotalChanges sums the pending change-map entries across all member files.
func (g *BookGroup) TotalChanges() int {
	total := 0
	for _, f := range g.Files {
		total += len(f.Changes)
	}
	return total
}

// CoverSource ranks where a cover candidate came from, most trusted first.
type CoverSource int

const (
	CoverSourceUnknown CoverSource = iota
	CoverSourceUser
	CoverSourceStorefront
	CoverSourceRetailerASIN
	CoverSourceCatalog
	CoverSourceEmbedded
)

// CoverCandidate is one competing cover image for a book.
// Score is derived from dimensions, source and aspect ratio (0-100) and is
// recomputed whenever those inputs change; it is never stored independently.
type CoverCandidate struct {
	URL    string      `json:"url"`
	Source CoverSource `json:"source"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Bytes  int64       `json:"bytes,omitempty"`
	Score  int         `json:"score"`
	Title  string      `json:"title,omitempty"` // disambiguates multi-result searches
	Best   bool        `json:"best,omitempty"`
}

// WriteFailure records one failed item in a batch write.
type WriteFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// BatchResult aggregates per-item outcomes of a batch tag write.
// Batch operations report partial success explicitly rather than
// an all-or-nothing outcome; Succeeded+Failed+Skipped accounts for
// every file handed to the batch.
type BatchResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	// Skipped counts queued files left unprocessed after a mid-batch
	// cancellation.
	Skipped  int            `json:"skipped,omitempty"`
	Failures []WriteFailure `json:"failures,omitempty"`
}

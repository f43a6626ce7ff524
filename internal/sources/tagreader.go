// file: internal/sources/tagreader.go
// version: 1.1.0
// guid: e5f6a7b8-c9d0-1e2f-3a4b-5c6d7e8f9a0b

package sources

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// EmbeddedTags holds the best-effort tag fields read from one audio file.
// All fields may be empty for a file with malformed or absent tags; only a
// wholly unreadable file produces an error.
type EmbeddedTags struct {
	Title   string
	Artist  string
	Album   string
	Genre   string
	Year    string
	Comment string
	// Extended, best-effort
	Narrator  string
	Publisher string
	Language  string
	ISBN      string
	ASIN      string
}

// TagReader reads embedded tags from audio files on disk.
type TagReader interface {
	Read(path string) (EmbeddedTags, error)
}

// FileTagReader implements TagReader with the dhowden/tag library.
type FileTagReader struct{}

// Read extracts tags from an audio file. A malformed tag block degrades to
// empty fields; an unopenable file is an error.
func (FileTagReader) Read(path string) (EmbeddedTags, error) {
	var tags EmbeddedTags

	f, err := os.Open(path)
	if err != nil {
		return tags, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Malformed tags are not an error condition for the caller.
		return tags, nil
	}

	tags.Title = strings.TrimSpace(m.Title())
	tags.Artist = strings.TrimSpace(m.Artist())
	tags.Album = strings.TrimSpace(m.Album())
	tags.Genre = strings.TrimSpace(m.Genre())
	tags.Comment = strings.TrimSpace(m.Comment())
	if y := m.Year(); y > 0 {
		tags.Year = strconv.Itoa(y)
	}

	raw := m.Raw()
	tags.Narrator = rawString(raw, "TXXX:NARRATOR", "TXXX:Narrator", "NARRATOR", "Narrator", "©nrt", "©wrt")
	tags.Publisher = rawString(raw, "TPUB", "©pub", "PUBLISHER")
	tags.Language = rawString(raw, "TLAN", "LANGUAGE")
	tags.ISBN = rawString(raw, "TXXX:ISBN", "TXXX:ISBN13", "ISBN")
	tags.ASIN = rawString(raw, "TXXX:ASIN", "ASIN", "CDEK", "----:com.apple.iTunes:ASIN")

	return tags, nil
}

// rawString returns the first string-typed value among the given raw tag
// keys. Availability varies by format and tagging tool; this is best-effort.
func rawString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, sok := v.(string); sok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

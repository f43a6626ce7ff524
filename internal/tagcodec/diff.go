// file: internal/tagcodec/diff.go
// version: 1.1.0
// guid: 5a6b7c8d-9e0f-1a2b-3c4d-5e6f7a8b9c0d

package tagcodec

import (
	"fmt"
	"strings"

	taglib "go.senan.xyz/taglib"

	"github.com/jdfalk/audiobook-curator/internal/models"
)

// ReadFunc reads the property map of an audio file. The default is the
// native tag library; tests substitute in-memory fakes.
type ReadFunc func(path string) (map[string][]string, error)

// ReadProperties is the default ReadFunc.
func ReadProperties(path string) (map[string][]string, error) {
	return taglib.ReadTags(path)
}

// DiffTags compares canonical metadata against the file's currently
// embedded tags, re-read fresh from disk, and returns the change map. A
// field appears iff the canonical value is non-empty and differs from the
// embedded value, including the embedded-value-absent case.
func DiffTags(read ReadFunc, path string, meta *models.BookMetadata) (map[string]models.MetadataChange, error) {
	if read == nil {
		read = ReadProperties
	}
	props, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags from %s: %w", path, err)
	}

	embedded := func(keys ...string) string {
		for _, key := range keys {
			if vals, ok := props[key]; ok && len(vals) > 0 {
				return strings.TrimSpace(vals[0])
			}
		}
		return ""
	}

	title := meta.Title
	if meta.Subtitle != "" {
		title = title + ": " + meta.Subtitle
	}

	changes := make(map[string]models.MetadataChange)
	compare := func(field, want, have string) {
		if want != "" && want != have {
			changes[field] = models.MetadataChange{Old: have, New: want}
		}
	}

	compare(FieldTitle, title, embedded("TITLE"))
	compare(FieldAuthor, meta.Author, embedded("ARTIST"))
	compare(FieldAlbum, meta.Title, embedded("ALBUM"))
	// Pre-write, narrator heuristically lives in the comment field; that is
	// the embedded value it is compared against.
	compare(FieldNarrator, meta.Narrator, embedded("COMPOSER", "COMMENT"))
	compare(FieldGenre, meta.GenreString(), strings.TrimSpace(strings.Join(props["GENRE"], ", ")))
	compare(FieldYear, meta.Year, yearOf(embedded("DATE")))
	compare(FieldSeries, meta.Series, embedded(propSeries))
	compare(FieldSequence, meta.Sequence, embedded(propSequence))
	compare(FieldPublisher, meta.Publisher, embedded("PUBLISHER", "LABEL"))
	compare(FieldISBN, meta.ISBN, embedded(propISBN))
	compare(FieldASIN, meta.ASIN, embedded(propASIN))
	compare(FieldLanguage, strings.ToLower(meta.Language), strings.ToLower(embedded("LANGUAGE")))
	if meta.Description != "" && !strings.Contains(strings.ToLower(meta.Description), "narrated by") {
		compare(FieldDescription, meta.Description, embedded("COMMENT"))
	}

	return changes, nil
}

// yearOf reduces a DATE value like "1999-03-01" to its year component.
func yearOf(date string) string {
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

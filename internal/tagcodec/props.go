// file: internal/tagcodec/props.go
// version: 1.1.0
// guid: 4f5a6b7c-8d9e-0f1a-2b3c-4d5e6f7a8b9c

package tagcodec

import (
	"strconv"
	"strings"

	"github.com/jdfalk/audiobook-curator/internal/models"
)

// Change-set field names. These are the keys of the MetadataChange map
// produced by DiffTags and consumed by BuildProperties.
const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldAlbum       = "album"
	FieldNarrator    = "narrator"
	FieldGenre       = "genre"
	FieldYear        = "year"
	FieldSeries      = "series"
	FieldSequence    = "sequence"
	FieldPublisher   = "publisher"
	FieldDescription = "description"
	FieldISBN        = "isbn"
	FieldASIN        = "asin"
	FieldLanguage    = "language"
)

// Custom property names for fields without a standard key. The tag library
// maps these to freeform atoms or TXXX/custom frames per container.
const (
	propSeries   = "SERIES"
	propSequence = "SERIESSEQUENCE"
	propASIN     = "ASIN"
	propISBN     = "ISBN"
)

// BuildProperties turns the changed fields of a canonical record into the
// property map handed to the tag library. Only fields present in the
// change map are serialized; writing a key replaces all of its existing
// values, so multi-valued fields never accumulate across runs.
func BuildProperties(family Family, meta *models.BookMetadata, changes map[string]models.MetadataChange) map[string][]string {
	props := make(map[string][]string)
	changed := func(field string) bool {
		_, ok := changes[field]
		return ok
	}

	if changed(FieldTitle) && meta.Title != "" {
		title := meta.Title
		if meta.Subtitle != "" {
			title = title + ": " + meta.Subtitle
		}
		props["TITLE"] = []string{title}
	}
	if changed(FieldAuthor) && meta.Author != "" {
		props["ARTIST"] = []string{meta.Author}
		props["ALBUMARTIST"] = []string{meta.Author}
	}
	if changed(FieldAlbum) && meta.Title != "" {
		props["ALBUM"] = []string{meta.Title}
	}

	// Narrator always goes into the composer slot: no container format has
	// a native narrator field.
	if changed(FieldNarrator) && meta.Narrator != "" {
		props["COMPOSER"] = []string{meta.Narrator}
	}

	// Genre entries are written one per value so rewrites replace rather
	// than append.
	if changed(FieldGenre) && len(meta.Genres) > 0 {
		entries := make([]string, 0, len(meta.Genres))
		for _, g := range meta.Genres {
			for _, tok := range strings.Split(g, ",") {
				if tok = strings.TrimSpace(tok); tok != "" {
					entries = append(entries, tok)
				}
			}
		}
		props["GENRE"] = entries
	}

	if changed(FieldYear) && meta.Year != "" {
		if family == FamilyAtom {
			// Atom day fields only accept plain non-negative integers.
			if n, err := strconv.Atoi(meta.Year); err == nil && n >= 0 {
				props["DATE"] = []string{meta.Year}
			}
		} else {
			props["DATE"] = []string{meta.Year}
		}
	}

	if changed(FieldSeries) && meta.Series != "" {
		props[propSeries] = []string{meta.Series}
	}
	if changed(FieldSequence) && meta.Sequence != "" {
		props[propSequence] = []string{meta.Sequence}
	}
	if changed(FieldASIN) && meta.ASIN != "" {
		props[propASIN] = []string{meta.ASIN}
	}
	if changed(FieldISBN) && meta.ISBN != "" {
		props[propISBN] = []string{meta.ISBN}
	}
	if changed(FieldLanguage) && meta.Language != "" {
		props["LANGUAGE"] = []string{strings.ToLower(meta.Language)}
	}
	if changed(FieldPublisher) && meta.Publisher != "" {
		if family == FamilyFrame {
			props["LABEL"] = []string{meta.Publisher}
		} else {
			props["PUBLISHER"] = []string{meta.Publisher}
		}
	}

	// A description carrying a narrator credit line is never embedded; the
	// narrator field owns that information.
	if changed(FieldDescription) && meta.Description != "" &&
		!strings.Contains(strings.ToLower(meta.Description), "narrated by") {
		props["COMMENT"] = []string{meta.Description}
	}

	return props
}

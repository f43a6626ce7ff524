// file: internal/tagcodec/family.go
// version: 1.0.0
// guid: 3e4f5a6b-7c8d-9e0f-1a2b-3c4d5e6f7a8b

// Package tagcodec serializes canonical book metadata into the native tag
// structure of audio files, by container family, preserving unrelated tag
// data and the audio stream.
package tagcodec

import (
	"path/filepath"
	"strings"
)

// Family is the closed set of tag container families the writer knows.
// Dispatch happens once, by file extension, at the top of each write.
type Family int

const (
	// FamilyUnsupported fails the whole write for the file.
	FamilyUnsupported Family = iota
	// FamilyAtom covers MPEG-4 derivatives storing metadata as typed atoms.
	FamilyAtom
	// FamilyFrame covers the MP3/FLAC/Ogg family with extensible tag items.
	FamilyFrame
)

func (f Family) String() string {
	switch f {
	case FamilyAtom:
		return "atom"
	case FamilyFrame:
		return "frame"
	default:
		return "unsupported"
	}
}

// FamilyFor dispatches by extension, not content sniffing.
func FamilyFor(path string) Family {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m4b", ".m4a", ".mp4", ".aac":
		return FamilyAtom
	case ".mp3", ".flac", ".ogg", ".opus":
		return FamilyFrame
	default:
		return FamilyUnsupported
	}
}

// file: internal/scanner/scanner.go
// version: 2.0.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

// Package scanner discovers audio files under a library root and clusters
// them into book groups, one per directory holding audio files.
package scanner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/jdfalk/audiobook-curator/internal/models"
	"github.com/jdfalk/audiobook-curator/internal/sidecar"
)

// DefaultExtensions are the container extensions the curator handles.
var DefaultExtensions = []string{
	".m4b", ".m4a", ".mp4", ".aac", ".mp3", ".flac", ".ogg", ".opus",
}

// Scanner walks a library root and produces book groups.
type Scanner struct {
	extensions map[string]bool
}

// New creates a scanner for the given extensions; nil means defaults.
func New(extensions []string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	return &Scanner{extensions: exts}
}

// Scan walks rootDir and returns one group per directory containing audio
// files. A directory with a sidecar record starts in the loaded-from-file
// state with the sidecar adopted verbatim.
func (s *Scanner) Scan(rootDir string) ([]*models.BookGroup, error) {
	byDir := make(map[string][]string)
	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Printf("[WARN] scanner: skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if s.extensions[strings.ToLower(filepath.Ext(path))] {
			dir := filepath.Dir(path)
			byDir[dir] = append(byDir[dir], path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", rootDir, err)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	groups := make([]*models.BookGroup, 0, len(dirs))
	for _, dir := range dirs {
		paths := byDir[dir]
		sort.Strings(paths)
		group := &models.BookGroup{
			ID:    ulid.Make().String(),
			Name:  filepath.Base(dir),
			Dir:   dir,
			Type:  inferGroupType(paths),
			State: models.StateNotScanned,
		}
		for _, p := range paths {
			group.Files = append(group.Files, &models.AudioFile{
				Path:   p,
				Name:   filepath.Base(p),
				Status: models.FileUnchanged,
			})
		}

		meta, ok, err := sidecar.Load(dir)
		if err != nil {
			log.Printf("[WARN] scanner: ignoring sidecar in %s: %v", dir, err)
		} else if ok {
			group.Metadata = meta
			group.State = models.StateLoadedFromFile
		}

		groups = append(groups, group)
	}
	return groups, nil
}

// Filename patterns used to tell chaptered rips from part/disc splits.
var (
	reMultiPart  = regexp.MustCompile(`(?i)\b(?:part|pt|disc|disk|cd)\s*[-_. ]?\d+\b`)
	reRomanPart  = regexp.MustCompile(`(?i)\b(?:part|pt)\s+[ivxlc]+\b`)
	reNumericPre = regexp.MustCompile(`^\d{1,3}[-_. )]`)
	reChapter    = regexp.MustCompile(`(?i)\bch(?:apter)?\s*[-_. ]?\d+\b`)
)

// inferGroupType classifies a file cluster by its filename patterns.
func inferGroupType(paths []string) models.GroupType {
	if len(paths) == 1 {
		return models.GroupSingle
	}
	numeric := 0
	for _, p := range paths {
		name := filepath.Base(p)
		if reMultiPart.MatchString(name) || reRomanPart.MatchString(name) {
			return models.GroupMultiPart
		}
		if reChapter.MatchString(name) || reNumericPre.MatchString(name) {
			numeric++
		}
	}
	// A majority of chapter-numbered names marks a chaptered rip.
	if numeric*2 >= len(paths) {
		return models.GroupChapters
	}
	return models.GroupMultiPart
}

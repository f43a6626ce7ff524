// file: internal/covers/ranker.go
// version: 1.0.0
// guid: 7d8e9f0a-1b2c-3d4e-5f6a-7b8c9d0e1f2a

// Package covers scores and selects cover-image candidates for a book.
package covers

import (
	"sort"

	"github.com/jdfalk/audiobook-curator/internal/models"
)

// Score computes the quality score for a candidate: banded resolution
// (0-50) + source trust (0-30) + aspect ratio (0-20), clamped to [0,100].
func Score(c models.CoverCandidate) int {
	score := resolutionScore(c.Width, c.Height) + sourceScore(c.Source) + aspectScore(c.Width, c.Height)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// resolutionScore bands by min(width, height).
func resolutionScore(w, h int) int {
	m := w
	if h < m {
		m = h
	}
	switch {
	case m >= 2000:
		return 50
	case m >= 1500:
		return 45
	case m >= 1000:
		return 40
	case m >= 500:
		return 30
	case m >= 300:
		return 20
	default:
		return 10
	}
}

// sourceScore is a fixed per-source trust table.
func sourceScore(s models.CoverSource) int {
	switch s {
	case models.CoverSourceUser:
		return 30
	case models.CoverSourceStorefront:
		return 28
	case models.CoverSourceRetailerASIN:
		return 25
	case models.CoverSourceCatalog:
		return 18
	case models.CoverSourceEmbedded:
		return 15
	default:
		return 5
	}
}

// aspectScore rewards square-ish and portrait-book ratios. Skipped when
// either dimension is zero.
func aspectScore(w, h int) int {
	if w == 0 || h == 0 {
		return 0
	}
	ratio := float64(h) / float64(w)
	switch {
	case ratio >= 0.9 && ratio <= 1.1:
		return 20
	case ratio >= 1.3 && ratio <= 1.7:
		return 18
	case ratio >= 0.6 && ratio <= 1.4:
		return 10
	default:
		return 5
	}
}

// sourcePriority orders candidate sources for first-success selection.
var sourcePriority = []models.CoverSource{
	models.CoverSourceUser,
	models.CoverSourceStorefront,
	models.CoverSourceRetailerASIN,
	models.CoverSourceCatalog,
	models.CoverSourceEmbedded,
	models.CoverSourceUnknown,
}

// PickBest selects among candidates for the same book. With multiSearch
// false, the first candidate from the highest-priority source wins without
// scoring the rest. With multiSearch true, all candidates are scored and
// returned sorted by score descending with the top one flagged Best.
func PickBest(candidates []models.CoverCandidate, multiSearch bool) []models.CoverCandidate {
	if len(candidates) == 0 {
		return nil
	}

	if !multiSearch {
		for _, src := range sourcePriority {
			for _, c := range candidates {
				if c.Source == src {
					c.Score = Score(c)
					c.Best = true
					return []models.CoverCandidate{c}
				}
			}
		}
		// Unreachable with a complete priority table; fall through anyway.
		c := candidates[0]
		c.Score = Score(c)
		c.Best = true
		return []models.CoverCandidate{c}
	}

	scored := make([]models.CoverCandidate, len(candidates))
	copy(scored, candidates)
	for i := range scored {
		scored[i].Score = Score(scored[i])
		scored[i].Best = false
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	scored[0].Best = true
	return scored
}

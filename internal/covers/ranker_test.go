// file: internal/covers/ranker_test.go
// version: 1.0.0
// guid: 8e9f0a1b-2c3d-4e5f-6a7b-8c9d0e1f2a3b

package covers

import (
	"testing"

	"github.com/jdfalk/audiobook-curator/internal/models"
)

func TestScoreMonotonicInResolution(t *testing.T) {
	// Same source and aspect; higher min-dimension band must never score lower.
	dims := []int{100, 300, 500, 1000, 1500, 2000, 3000}
	prev := -1
	for _, d := range dims {
		c := models.CoverCandidate{Source: models.CoverSourceCatalog, Width: d, Height: d}
		s := Score(c)
		if s < prev {
			t.Errorf("score decreased at %dpx: %d < %d", d, s, prev)
		}
		prev = s
	}
}

func TestScoreSourceOrdering(t *testing.T) {
	ordered := []models.CoverSource{
		models.CoverSourceUser,
		models.CoverSourceStorefront,
		models.CoverSourceRetailerASIN,
		models.CoverSourceCatalog,
		models.CoverSourceEmbedded,
		models.CoverSourceUnknown,
	}
	prev := 101
	for _, src := range ordered {
		s := Score(models.CoverCandidate{Source: src, Width: 600, Height: 600})
		if s > prev {
			t.Errorf("source %v scored %d, above more-trusted predecessor %d", src, s, prev)
		}
		prev = s
	}
}

func TestScoreAspect(t *testing.T) {
	square := Score(models.CoverCandidate{Source: models.CoverSourceCatalog, Width: 500, Height: 500})
	wide := Score(models.CoverCandidate{Source: models.CoverSourceCatalog, Width: 500, Height: 100})
	if square <= wide {
		t.Errorf("square cover (%d) should outscore extreme wide (%d)", square, wide)
	}
	zero := models.CoverCandidate{Source: models.CoverSourceCatalog}
	if got := Score(zero); got != sourceScore(zero.Source)+resolutionScore(0, 0) {
		t.Errorf("zero-dimension candidate got aspect credit: %d", got)
	}
}

func TestScoreBounds(t *testing.T) {
	cases := []models.CoverCandidate{
		{},
		{Source: models.CoverSourceUser, Width: 4000, Height: 4000},
		{Source: models.CoverSourceUnknown, Width: 1, Height: 4000},
	}
	for _, c := range cases {
		if s := Score(c); s < 0 || s > 100 {
			t.Errorf("Score(%+v) = %d, out of [0,100]", c, s)
		}
	}
}

func TestPickBestPriorityMode(t *testing.T) {
	candidates := []models.CoverCandidate{
		{URL: "catalog", Source: models.CoverSourceCatalog, Width: 3000, Height: 3000},
		{URL: "user", Source: models.CoverSourceUser, Width: 200, Height: 200},
	}
	got := PickBest(candidates, false)
	if len(got) != 1 || got[0].URL != "user" || !got[0].Best {
		t.Fatalf("priority mode should pick the user cover regardless of score, got %+v", got)
	}
}

func TestPickBestMultiSearch(t *testing.T) {
	candidates := []models.CoverCandidate{
		{URL: "small", Source: models.CoverSourceCatalog, Width: 200, Height: 200},
		{URL: "big", Source: models.CoverSourceCatalog, Width: 2400, Height: 2400},
	}
	got := PickBest(candidates, true)
	if len(got) != 2 {
		t.Fatalf("multiSearch should return all candidates, got %d", len(got))
	}
	if got[0].URL != "big" || !got[0].Best {
		t.Errorf("best candidate should be first and flagged, got %+v", got[0])
	}
	if got[1].Best {
		t.Errorf("only one candidate may be flagged Best")
	}
	if got[0].Score < got[1].Score {
		t.Errorf("results not sorted by score descending")
	}
}

func TestPickBestEmpty(t *testing.T) {
	if got := PickBest(nil, true); got != nil {
		t.Errorf("PickBest(nil) = %v, want nil", got)
	}
}

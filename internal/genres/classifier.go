// file: internal/genres/classifier.go
// version: 1.1.0
// guid: 6c7d8e9f-0a1b-2c3d-4e5f-6a7b8c9d0e1f

// Package genres maps arbitrary free-text genre strings onto the fixed
// approved taxonomy. The classifier is deterministic and idempotent:
// re-running it on its own output yields the same output.
package genres

import (
	"sort"
	"strings"
)

// MaxGenres caps the classifier output length.
const MaxGenres = 3

// approvedSet is built once from Approved for exact lookups.
var approvedSet = func() map[string]string {
	m := make(map[string]string, len(Approved))
	for _, g := range Approved {
		m[strings.ToLower(g)] = g
	}
	return m
}()

// ageBandKeywords orders the keyword table longest-first (ties broken
// lexically) so a haystack containing two keywords always resolves to the
// same band.
var ageBandKeywords = func() []string {
	kws := make([]string, 0, len(seriesAgeBands))
	for kw := range seriesAgeBands {
		kws = append(kws, kw)
	}
	sort.Slice(kws, func(i, j int) bool {
		if len(kws[i]) != len(kws[j]) {
			return len(kws[i]) > len(kws[j])
		}
		return kws[i] < kws[j]
	})
	return kws
}()

// BookContext supplies title/series/author for children's age-band
// detection. All fields optional.
type BookContext struct {
	Title  string
	Series string
	Author string
}

// Classify maps raw genre tokens onto the approved taxonomy: split, map,
// enforce age bands from the book context, prioritize, cap at three.
// Unmappable tokens are dropped silently. An empty result defaults to
// ["Fiction"].
func Classify(raw []string, book BookContext) []string {
	tokens := splitTokens(raw)

	mapped := make([]string, 0, len(tokens))
	seen := make(map[string]bool)
	for _, tok := range tokens {
		g, ok := mapToken(tok)
		if !ok || seen[g] {
			continue
		}
		seen[g] = true
		mapped = append(mapped, g)
	}

	mapped = prioritize(mapped)
	mapped = enforceAgeBand(mapped, book)

	if len(mapped) > MaxGenres {
		mapped = mapped[:MaxGenres]
	}
	if len(mapped) == 0 {
		return []string{"Fiction"}
	}
	return mapped
}

// splitTokens splits combined strings on recognized separators in priority
// order and deduplicates case-insensitively preserving first-seen order.
func splitTokens(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(tok string) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return
		}
		key := strings.ToLower(tok)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, tok)
	}

	for _, r := range raw {
		r = strings.TrimSpace(r)
		switch {
		case strings.Contains(r, " / "):
			for _, p := range strings.Split(r, " / ") {
				add(p)
			}
		case strings.Contains(r, "/"):
			for _, p := range strings.Split(r, "/") {
				add(p)
			}
		case strings.Contains(r, ", "):
			for _, p := range strings.Split(r, ", ") {
				add(p)
			}
		case strings.Contains(r, " & "):
			for _, p := range strings.Split(r, " & ") {
				add(p)
			}
		default:
			add(r)
		}
	}
	return out
}

// mapToken resolves one token to an approved genre: exact match, alias
// lookup, then substring containment in either direction.
func mapToken(tok string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(tok))
	if lower == "" {
		return "", false
	}
	if g, ok := approvedSet[lower]; ok {
		return g, true
	}
	if g, ok := aliases[lower]; ok {
		return g, true
	}
	// Substring containment, either direction. Longer approved names first
	// so "historical romance" beats "romance".
	best := ""
	for _, g := range Approved {
		gl := strings.ToLower(g)
		if strings.Contains(lower, gl) || strings.Contains(gl, lower) {
			if len(g) > len(best) {
				best = g
			}
		}
	}
	if best != "" {
		return best, true
	}
	return "", false
}

// enforceAgeBand consults the keyword table against title/series/author.
// A match removes generic children's/teen tags and inserts the specific
// band at the front.
func enforceAgeBand(mapped []string, book BookContext) []string {
	band := DetectAgeBand(book)
	if band == "" {
		return mapped
	}
	out := make([]string, 0, len(mapped)+1)
	out = append(out, band)
	for _, g := range mapped {
		if isAgeBand(g) || g == band {
			continue
		}
		out = append(out, g)
	}
	return out
}

// DetectAgeBand returns the specific age band for a book, or "" when no
// keyword matches.
func DetectAgeBand(book BookContext) string {
	haystacks := []string{
		strings.ToLower(book.Series),
		strings.ToLower(book.Title),
		strings.ToLower(book.Author),
	}
	for _, h := range haystacks {
		if h == "" {
			continue
		}
		for _, kw := range ageBandKeywords {
			if strings.Contains(h, kw) {
				return seriesAgeBands[kw]
			}
		}
	}
	return ""
}

func isAgeBand(g string) bool {
	for _, b := range ageBands {
		if g == b {
			return true
		}
	}
	return false
}

// prioritize sorts so that specific genres precede age bands, which precede
// broad genres, preserving relative order within each rank. "Fiction" is
// dropped when a specific non-broad, non-age genre is present.
func prioritize(mapped []string) []string {
	hasSpecific := false
	for _, g := range mapped {
		if !broadGenres[g] && !isAgeBand(g) {
			hasSpecific = true
			break
		}
	}
	if hasSpecific {
		filtered := mapped[:0]
		for _, g := range mapped {
			if g == "Fiction" {
				continue
			}
			filtered = append(filtered, g)
		}
		mapped = filtered
	}

	rank := func(g string) int {
		switch {
		case broadGenres[g]:
			return 2
		case isAgeBand(g):
			return 1
		default:
			return 0
		}
	}
	sort.SliceStable(mapped, func(i, j int) bool {
		return rank(mapped[i]) < rank(mapped[j])
	})
	return mapped
}

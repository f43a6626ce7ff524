// file: internal/normalize/normalize.go
// version: 1.2.0
// guid: 8a9b0c1d-2e3f-4a5b-6c7d-8e9f0a1b2c3d

// Package normalize provides pure text-cleaning helpers for bibliographic
// fields: titles, person names, years. No I/O, no failure modes beyond
// returning a best-effort string.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// minorWords stay lowercase in title case unless first or last word.
var minorWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "nor": true,
	"as": true, "at": true, "by": true, "for": true, "in": true,
	"of": true, "on": true, "to": true, "up": true, "via": true,
}

// nameParticles are kept as-is when title-casing person names.
var nameParticles = map[string]bool{
	"de": true, "van": true, "von": true, "la": true,
	"le": true, "da": true, "di": true, "del": true,
}

// nameSuffixes are recognized after a comma in "Last, First Suffix" forms
// and left unmodified by casing.
var nameSuffixes = map[string]bool{
	"jr.": true, "jr": true, "sr.": true, "sr": true,
	"ii": true, "iii": true, "iv": true,
	"phd": true, "md": true,
}

// placeholderPersons are values that are never a real person.
var placeholderPersons = map[string]bool{
	"unknown": true, "unknown artist": true, "unknown author": true,
	"n/a": true, "na": true, "none": true, "various": true,
	"various artists": true, "various authors": true, "anonymous": true,
}

// junkSuffixes are bracketed/parenthesized quality and edition markers
// removed case-insensitively from the end of titles.
var junkSuffixes = []string{
	"(unabridged)", "[unabridged]", "(abridged)", "[abridged]",
	"(audiobook)", "[audiobook]", "(audio book)", "[audio book]",
	"(retail)", "[retail]", "(m4b)", "[m4b]", "(mp3)", "[mp3]",
	"(64k)", "(64kbps)", "(128k)", "(128kbps)", "(320k)", "(320kbps)",
	"[64k]", "[64kbps]", "[128k]", "[128kbps]", "[320k]", "[320kbps]",
	"64kbps", "128kbps", "320kbps",
	"(complete)", "[complete]", "(full)", "[full]",
	"(epub)", "[epub]", "(pdf)", "[pdf]",
}

// narratorCreditPrefixes mark a subtitle candidate as a narrator credit,
// not a real subtitle.
var narratorCreditPrefixes = []string{
	"read by", "narrated by", "performed by", "with",
}

var personPrefixes = []string{
	"written by ", "narrated by ", "read by ", "by ",
}

// Series marker patterns, end-anchored, tried longest-match-first.
var seriesMarkerPatterns = []*regexp.Regexp{
	// "(Series Name #3)" / "(Series Name, Book 3)" / "(Series Name Book 3)"
	regexp.MustCompile(`(?i)\s*\([^)]*(?:#|book\s+)\d+(?:\.\d+)?\)\s*$`),
	// ", Book 3" / " Book 3"
	regexp.MustCompile(`(?i)[,\s]+book\s+\d+(?:\.\d+)?\s*$`),
	// " #3"
	regexp.MustCompile(`\s+#\d+(?:\.\d+)?\s*$`),
}

// Leading series-numbering markers such as "Magic Tree House #46: Title".
var leadingSeriesMarker = regexp.MustCompile(`^(.+?)\s+#\d+(?:\.\d+)?\s*:\s*`)

var (
	acronymPattern = regexp.MustCompile(`^[A-Z0-9]{2,5}$`)
	fourDigitYear  = regexp.MustCompile(`(19|20)\d{2}`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// TitleCase applies word-by-word title casing. Minor words stay lowercase
// unless first or last; words with internal capitals or matching an acronym
// pattern pass through unchanged.
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		if hasInternalCapital(w) || acronymPattern.MatchString(w) {
			continue
		}
		lower := strings.ToLower(w)
		if i != 0 && i != len(words)-1 && minorWords[strings.TrimRight(lower, ".,:;!?")] {
			words[i] = lower
			continue
		}
		words[i] = capitalizeWord(lower)
	}
	return strings.Join(words, " ")
}

// hasInternalCapital reports whether a capital appears after the first rune,
// e.g. "McCarthy" or "iPhone".
func hasInternalCapital(w string) bool {
	for i, r := range w {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func capitalizeWord(w string) string {
	for i, r := range w {
		if unicode.IsLetter(r) {
			return w[:i] + string(unicode.ToUpper(r)) + w[i+len(string(r)):]
		}
	}
	return w
}

// StripJunkSuffixes iteratively removes quality and edition markers and
// trailing dashes from the end of s until the string stops changing. The
// dash trim runs inside the fixpoint loop because it can expose another
// marker; applying the function twice yields the same result as once.
func StripJunkSuffixes(s string) string {
	s = strings.TrimSpace(s)
	for {
		before := s
		lower := strings.ToLower(s)
		for _, junk := range junkSuffixes {
			if strings.HasSuffix(lower, junk) {
				s = strings.TrimSpace(s[:len(s)-len(junk)])
				lower = strings.ToLower(s)
			}
		}
		s = strings.TrimSpace(strings.TrimRight(s, "-–— "))
		if s == before {
			break
		}
	}
	return s
}

// StripSeriesMarker removes trailing "(Series #N)", ", Book N" and "#N"
// patterns, longest-match-first, only at the end of the string. It also
// strips a leading "Series Name #N:" prefix so chaptered children's titles
// like "Magic Tree House #46: Dogs in the Dead of Night" keep the bare title.
func StripSeriesMarker(s string) string {
	s = strings.TrimSpace(s)
	if m := leadingSeriesMarker.FindStringSubmatchIndex(s); m != nil {
		s = strings.TrimSpace(s[m[1]:])
	}
	for {
		before := s
		for _, re := range seriesMarkerPatterns {
			s = strings.TrimSpace(re.ReplaceAllString(s, ""))
		}
		if s == before {
			break
		}
	}
	return s
}

// SplitTitleSubtitle splits on the first colon, or else the first dash
// separator, into (main, subtitle). The split only happens when the subtitle
// candidate is non-trivial (>2 chars) and does not begin with a narrator
// credit phrase.
func SplitTitleSubtitle(s string) (string, string) {
	s = strings.TrimSpace(s)
	separators := []string{":", " - ", " – ", " — "}
	for _, sep := range separators {
		idx := strings.Index(s, sep)
		if idx <= 0 {
			continue
		}
		main := strings.TrimSpace(s[:idx])
		sub := strings.TrimSpace(s[idx+len(sep):])
		if len(sub) <= 2 || main == "" {
			continue
		}
		if isNarratorCredit(sub) {
			continue
		}
		return main, sub
	}
	return s, ""
}

func isNarratorCredit(s string) bool {
	lower := strings.ToLower(s)
	for _, pfx := range narratorCreditPrefixes {
		if strings.HasPrefix(lower, pfx+" ") || lower == pfx {
			return true
		}
	}
	return false
}

// CleanPersonName normalizes an author or narrator name: strips credit
// prefixes and surrounding quotes, converts "Last, First" to "First Last"
// (unless the comma introduces a recognized suffix), then title-cases while
// leaving name particles and suffix tokens unmodified.
func CleanPersonName(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, pfx := range personPrefixes {
		if strings.HasPrefix(lower, pfx) {
			s = strings.TrimSpace(s[len(pfx):])
			lower = strings.ToLower(s)
		}
	}
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)

	if idx := strings.Index(s, ","); idx > 0 {
		after := strings.TrimSpace(s[idx+1:])
		toks := strings.Fields(after)
		if len(toks) > 0 && !nameSuffixes[strings.ToLower(strings.TrimRight(toks[0], ","))] {
			s = after + " " + strings.TrimSpace(s[:idx])
		}
	}

	words := strings.Fields(s)
	for i, w := range words {
		lw := strings.ToLower(w)
		if nameParticles[lw] {
			words[i] = lw
			continue
		}
		if nameSuffixes[lw] {
			continue
		}
		if hasInternalCapital(w) || strings.Contains(w, ".") {
			continue
		}
		words[i] = capitalizeWord(lw)
	}
	return strings.Join(words, " ")
}

// ValidateYear accepts a 4-digit year in [1800,2100]. Otherwise it attempts
// to extract a 19xx/20xx substring. Returns ("", false) on failure.
func ValidateYear(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if y, err := strconv.Atoi(s); err == nil {
		if y >= 1800 && y <= 2100 {
			return strconv.Itoa(y), true
		}
		return "", false
	}
	if m := fourDigitYear.FindString(s); m != "" {
		return m, true
	}
	return "", false
}

// IsPlausiblePerson rejects placeholder values and requires at least two
// characters and one letter.
func IsPlausiblePerson(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return false
	}
	if placeholderPersons[strings.ToLower(s)] {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// CollapseWhitespace folds runs of whitespace into single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// file: internal/reconcile/extract.go
// version: 1.0.0
// guid: 1c2d3e4f-5a6b-7c8d-9e0f-1a2b3c4d5e6f

package reconcile

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Narrator credit patterns found in comment tags.
var narratorComment = regexp.MustCompile(
	`(?i)(?:narrated\s+by|read\s+by|performed\s+by|narrator:)\s*([^;\n\r]+)`,
)

// creditSuffixes may follow a comma inside a single credited name.
var creditSuffixes = map[string]bool{
	"jr": true, "jr.": true, "sr": true, "sr.": true,
	"ii": true, "iii": true, "iv": true,
}

// ExtractNarratorFromComment pulls a narrator credit out of a free-text
// comment tag. Comma-separated lists ("A. Smith, B. Jones") and
// generational suffixes ("Davis, Jr.") are kept intact; trailing prose is
// cut at the end of the credit sentence. Returns "" when no credit phrase
// is present.
func ExtractNarratorFromComment(comment string) string {
	m := narratorComment.FindStringSubmatch(comment)
	if m == nil {
		return ""
	}
	credit := trimCreditSentence(strings.TrimSpace(m[1]))

	parts := strings.Split(credit, ",")
	kept := []string{strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			break
		}
		first, _ := utf8.DecodeRuneInString(p)
		if !creditSuffixes[strings.ToLower(p)] && !unicode.IsUpper(first) {
			break
		}
		kept = append(kept, p)
	}
	return strings.TrimRight(strings.Join(kept, ", "), " !?")
}

// trimCreditSentence cuts the capture at the first sentence-ending period.
// Periods belonging to single-letter initials ("J.") or generational
// suffixes ("Jr.") are part of the name and do not end the sentence.
func trimCreditSentence(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != '.' {
			continue
		}
		start := strings.LastIndexAny(s[:i], " ,") + 1
		tok := strings.ToLower(s[start:i])
		if len(tok) == 1 || creditSuffixes[tok] {
			continue
		}
		return s[:i]
	}
	return s
}

// Folder-name series patterns, tried in order.
var (
	// "Series Name Book 3" / "Series Name, Book 3"
	reSeriesBookN = regexp.MustCompile(`(?i)^(.+?)[,\s]+book\s+(\d+(?:\.\d+)?)\s*$`)
	// "Series Name #3"
	reSeriesHashN = regexp.MustCompile(`^(.+?)\s+#(\d+(?:\.\d+)?)\s*$`)
	// "Series Name 03" — trailing two-digit token
	reSeriesTrailNN = regexp.MustCompile(`^(.+?)\s+(\d{2})\s*$`)
)

// ExtractSeriesFromFolder derives (series, sequence) from a folder name.
// Used only when no source supplies series information.
func ExtractSeriesFromFolder(folder string) (string, string) {
	folder = strings.TrimSpace(folder)
	for _, re := range []*regexp.Regexp{reSeriesBookN, reSeriesHashN, reSeriesTrailNN} {
		if m := re.FindStringSubmatch(folder); m != nil {
			series := strings.TrimSpace(m[1])
			seq := strings.TrimLeft(m[2], "0")
			if seq == "" {
				seq = "0"
			}
			if series != "" {
				return series, seq
			}
		}
	}
	return "", ""
}

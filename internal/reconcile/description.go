// file: internal/reconcile/description.go
// version: 1.0.0
// guid: 0b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e

package reconcile

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/jdfalk/audiobook-curator/internal/normalize"
)

// Minimum accepted description lengths after cleaning.
const (
	// MinDescriptionLen applies to heuristic (non-AI) candidates.
	MinDescriptionLen = 50
	// MinAIDescriptionLen applies to AI-provided descriptions.
	MinAIDescriptionLen = 100
)

// narratorSentence matches whole sentences that are narrator credits, e.g.
// "Narrated by Jim Dale." or "Read by the author".
var narratorSentence = regexp.MustCompile(
	`(?i)(?:^|(?:[.!?]\s+))(?:narrated\s+by|read\s+by|performed\s+by|narrator:)[^.!?]*[.!?]?`,
)

// CleanDescription strips HTML tags and entities, collapses whitespace and
// removes narrator-credit sentences. Returns ("", false) when the cleaned
// text is shorter than minLen.
func CleanDescription(raw string, minLen int) (string, bool) {
	s := stripHTML(raw)
	s = html.UnescapeString(s)
	s = narratorSentence.ReplaceAllStringFunc(s, func(m string) string {
		// Keep the sentence terminator of the preceding sentence.
		if idx := strings.IndexAny(m, ".!?"); idx >= 0 && idx < len(m)-1 {
			return m[:idx+1] + " "
		}
		return " "
	})
	s = normalize.CollapseWhitespace(s)
	if len(s) < minLen {
		return "", false
	}
	return s, true
}

// stripHTML walks the token stream and keeps only text content. Block-level
// closers become spaces so adjacent paragraphs do not run together.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "p", "br", "div", "li":
				b.WriteByte(' ')
			}
		}
	}
}

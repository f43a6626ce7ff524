// file: internal/reconcile/description_test.go
// version: 1.0.0
// guid: 5b6c7d8e-9f0a-1b2c-3d4e-5f6a7b8c9d0e

package reconcile

import (
	"strings"
	"testing"
)

func TestCleanDescription(t *testing.T) {
	long := strings.Repeat("A gripping tale of adventure. ", 5)

	tests := []struct {
		name   string
		input  string
		minLen int
		want   string
		wantOK bool
	}{
		{
			name:   "html stripped",
			input:  "<p>" + long + "</p>",
			minLen: 50,
			want:   strings.TrimSpace(long),
			wantOK: true,
		},
		{
			name:   "entities unescaped",
			input:  strings.Replace(long, "adventure", "war &amp; peace", 1),
			minLen: 50,
			want:   strings.TrimSpace(strings.Replace(long, "adventure", "war & peace", 1)),
			wantOK: true,
		},
		{
			name:   "narrator sentence removed",
			input:  long + "Narrated by Jim Dale. " + long,
			minLen: 50,
			want:   strings.TrimSpace(long + strings.TrimSpace(long)),
			wantOK: true,
		},
		{
			name:   "too short rejected",
			input:  "Short blurb.",
			minLen: 50,
			wantOK: false,
		},
		{
			name:   "higher AI bar",
			input:  strings.Repeat("x", 80),
			minLen: MinAIDescriptionLen,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanDescription(tt.input, tt.minLen)
			if ok != tt.wantOK {
				t.Fatalf("CleanDescription ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("CleanDescription = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanDescriptionBlockTagsSpaced(t *testing.T) {
	input := "<p>" + strings.Repeat("First paragraph sentence. ", 3) + "</p><p>Second paragraph follows here.</p>"
	got, ok := CleanDescription(input, 50)
	if !ok {
		t.Fatal("expected description to pass")
	}
	if strings.Contains(got, "sentence.Second") {
		t.Errorf("adjacent paragraphs ran together: %q", got)
	}
}

func TestExtractNarratorFromComment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Narrated by Jim Dale.", "Jim Dale"},
		{"read by Kate Reading", "Kate Reading"},
		{"Performed by a full cast, with music", "a full cast"},
		{"Narrator: Ray Porter", "Ray Porter"},
		{"Narrated by Davis, Jr.", "Davis, Jr."},
		{"Read by A. Smith, B. Jones", "A. Smith, B. Jones"},
		{"Narrated by Jim Dale. A wonderful production.", "Jim Dale"},
		{"Just a plain comment", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractNarratorFromComment(tt.input); got != tt.want {
			t.Errorf("ExtractNarratorFromComment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractSeriesFromFolder(t *testing.T) {
	tests := []struct {
		folder     string
		wantSeries string
		wantSeq    string
	}{
		{"The Dresden Files Book 7", "The Dresden Files", "7"},
		{"The Dresden Files, Book 7", "The Dresden Files", "7"},
		{"Discworld #13", "Discworld", "13"},
		{"Magic Tree House 46", "Magic Tree House", "46"},
		{"Wheel of Time 05", "Wheel of Time", "5"},
		{"Bloodlines #2.5", "Bloodlines", "2.5"},
		{"Just A Title", "", ""},
	}
	for _, tt := range tests {
		series, seq := ExtractSeriesFromFolder(tt.folder)
		if series != tt.wantSeries || seq != tt.wantSeq {
			t.Errorf("ExtractSeriesFromFolder(%q) = (%q, %q), want (%q, %q)",
				tt.folder, series, seq, tt.wantSeries, tt.wantSeq)
		}
	}
}

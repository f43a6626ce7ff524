// file: internal/ai/enhancer_test.go
// version: 1.0.0
// guid: 0b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5f

package ai

import (
	"context"
	"reflect"
	"testing"
)

func TestParseEnhancement(t *testing.T) {
	payload := []byte(`{
		"title": "The Martian",
		"author": "Andy Weir",
		"narrator": "R.C. Bray",
		"series": "",
		"series_number": 1,
		"genres": ["Science Fiction", "Adventure"],
		"year": 2011,
		"description": "An astronaut stranded on Mars fights to survive."
	}`)
	got, err := ParseEnhancement(payload)
	if err != nil {
		t.Fatalf("ParseEnhancement failed: %v", err)
	}
	if got.Title != "The Martian" || got.Author != "Andy Weir" {
		t.Errorf("title/author = %q/%q", got.Title, got.Author)
	}
	// Numbers coerce to undecorated strings.
	if got.Year != "2011" || got.Sequence != "1" {
		t.Errorf("year/sequence = %q/%q", got.Year, got.Sequence)
	}
	if !reflect.DeepEqual(got.Genres, []string{"Science Fiction", "Adventure"}) {
		t.Errorf("genres = %v", got.Genres)
	}
}

func TestParseEnhancementPermissiveTypes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, e *Enhancement)
	}{
		{
			name:    "nulls become empty",
			payload: `{"title": null, "year": null, "genres": null}`,
			check: func(t *testing.T, e *Enhancement) {
				if e.Title != "" || e.Year != "" || e.Genres != nil {
					t.Errorf("nulls leaked: %+v", e)
				}
			},
		},
		{
			name:    "float year trimmed",
			payload: `{"year": 2011.0}`,
			check: func(t *testing.T, e *Enhancement) {
				if e.Year != "2011" {
					t.Errorf("year = %q", e.Year)
				}
			},
		},
		{
			name:    "genres as comma string",
			payload: `{"genres": "Fantasy, Adventure"}`,
			check: func(t *testing.T, e *Enhancement) {
				if !reflect.DeepEqual(e.Genres, []string{"Fantasy", "Adventure"}) {
					t.Errorf("genres = %v", e.Genres)
				}
			},
		},
		{
			name:    "genres as single string",
			payload: `{"genres": "Mystery"}`,
			check: func(t *testing.T, e *Enhancement) {
				if !reflect.DeepEqual(e.Genres, []string{"Mystery"}) {
					t.Errorf("genres = %v", e.Genres)
				}
			},
		},
		{
			name:    "object field dropped",
			payload: `{"title": {"nested": "junk"}, "author": "Kept"}`,
			check: func(t *testing.T, e *Enhancement) {
				if e.Title != "" || e.Author != "Kept" {
					t.Errorf("object coercion: %+v", e)
				}
			},
		},
		{
			name:    "whitespace trimmed",
			payload: `{"title": "  Padded  "}`,
			check: func(t *testing.T, e *Enhancement) {
				if e.Title != "Padded" {
					t.Errorf("title = %q", e.Title)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnhancement([]byte(tt.payload))
			if err != nil {
				t.Fatalf("ParseEnhancement failed: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestParseEnhancementInvalidJSON(t *testing.T) {
	if _, err := ParseEnhancement([]byte("not json at all")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDisabledEnhancer(t *testing.T) {
	for _, e := range []*Enhancer{
		NewEnhancer("", true),
		NewEnhancer("sk-key", false),
	} {
		if e.IsEnabled() {
			t.Error("enhancer should be disabled")
		}
		if _, err := e.Enhance(context.Background(), Enhancement{}); err != ErrDisabled {
			t.Errorf("Enhance err = %v, want ErrDisabled", err)
		}
		if err := e.TestConnection(context.Background()); err != ErrDisabled {
			t.Errorf("TestConnection err = %v, want ErrDisabled", err)
		}
	}
}

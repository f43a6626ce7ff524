// file: internal/sources/googlebooks_test.go
// version: 1.0.0
// guid: c3d4e5f6-a7b8-9c0d-1e2f-a3b4c5d6e7f8

package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const googleBooksFixture = `{
  "totalItems": 2,
  "items": [
    {
      "volumeInfo": {
        "title": "The Name of the Wind",
        "subtitle": "The Kingkiller Chronicle: Day One",
        "authors": ["Patrick Rothfuss"],
        "publisher": "DAW Books",
        "publishedDate": "2007-03-27",
        "description": "The tale of Kvothe.",
        "categories": ["Fiction", "Fantasy"],
        "industryIdentifiers": [
          {"type": "ISBN_10", "identifier": "075640407X"},
          {"type": "ISBN_13", "identifier": "9780756404079"}
        ],
        "imageLinks": {"thumbnail": "https://books.example/cover.jpg"},
        "language": "en"
      }
    },
    {
      "volumeInfo": {
        "title": "Unrelated Result",
        "industryIdentifiers": [
          {"type": "ISBN_10", "identifier": "0000000000"}
        ]
      }
    }
  ]
}`

func TestGoogleBooksSearch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(googleBooksFixture))
	}))
	defer server.Close()

	client := NewGoogleBooksClientWithBaseURL(server.URL)
	records, err := client.Search(context.Background(), "The Name of the Wind", "Patrick Rothfuss")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotQuery != "intitle:The Name of the Wind+inauthor:Patrick Rothfuss" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	rec := records[0]
	if rec.Title != "The Name of the Wind" || rec.Author != "Patrick Rothfuss" {
		t.Errorf("record = %+v", rec)
	}
	if rec.ISBN != "9780756404079" {
		t.Errorf("ISBN = %q, want ISBN_13 preferred", rec.ISBN)
	}
	if rec.ReleaseDate != "2007-03-27" || rec.Publisher != "DAW Books" {
		t.Errorf("release/publisher = %q/%q", rec.ReleaseDate, rec.Publisher)
	}
	if rec.CoverURL != "https://books.example/cover.jpg" {
		t.Errorf("CoverURL = %q", rec.CoverURL)
	}
	if len(rec.Genres) != 2 {
		t.Errorf("Genres = %v", rec.Genres)
	}
	if records[1].ISBN != "0000000000" {
		t.Errorf("ISBN_10 fallback = %q", records[1].ISBN)
	}
}

func TestGoogleBooksSearchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGoogleBooksClientWithBaseURL(server.URL)
	if _, err := client.Search(context.Background(), "Anything", ""); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestGoogleBooksSearchBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewGoogleBooksClientWithBaseURL(server.URL)
	if _, err := client.Search(context.Background(), "Anything", ""); err == nil {
		t.Fatal("expected error for unparsable payload")
	}
}

func TestGoogleBooksSearchEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer server.Close()

	client := NewGoogleBooksClientWithBaseURL(server.URL)
	records, err := client.Search(context.Background(), "No Such Book", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

// file: internal/sources/googlebooks.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-f2a3b4c5d6e7

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// GoogleBooksClient fetches catalog metadata from the Google Books Volume
// API. No API key is required for basic searches (free tier, ~1000 req/day).
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewGoogleBooksClient creates a new Google Books API client.
func NewGoogleBooksClient(timeout time.Duration) *GoogleBooksClient {
	baseURL := os.Getenv("GOOGLE_BOOKS_BASE_URL")
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/books/v1"
	}
	return newGoogleBooksClient(baseURL, timeout)
}

// NewGoogleBooksClientWithBaseURL creates a client with a custom base URL (for testing).
func NewGoogleBooksClientWithBaseURL(baseURL string) *GoogleBooksClient {
	return newGoogleBooksClient(baseURL, 30*time.Second)
}

func newGoogleBooksClient(baseURL string, timeout time.Duration) *GoogleBooksClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GoogleBooksClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(2), 4), // stay well under the free tier
	}
}

// Name returns the display name for this metadata source.
func (c *GoogleBooksClient) Name() string {
	return "Google Books"
}

type googleBooksResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []googleBooksVol `json:"items"`
}

type googleBooksVol struct {
	VolumeInfo googleBooksVolumeInfo `json:"volumeInfo"`
}

type googleBooksVolumeInfo struct {
	Title               string                  `json:"title"`
	Subtitle            string                  `json:"subtitle"`
	Authors             []string                `json:"authors"`
	Publisher           string                  `json:"publisher"`
	PublishedDate       string                  `json:"publishedDate"`
	Description         string                  `json:"description"`
	Categories          []string                `json:"categories"`
	IndustryIdentifiers []googleBooksIndustryID `json:"industryIdentifiers"`
	ImageLinks          *googleBooksImageLinks  `json:"imageLinks"`
	Language            string                  `json:"language"`
}

type googleBooksIndustryID struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type googleBooksImageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

// Search queries Google Books by title, and author when available.
func (c *GoogleBooksClient) Search(ctx context.Context, title, author string) ([]Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("intitle:%s", title)
	if author != "" {
		query = fmt.Sprintf("intitle:%s+inauthor:%s", title, author)
	}
	searchURL := fmt.Sprintf("%s/volumes?q=%s&maxResults=5", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search Google Books: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google Books API returned status %d", resp.StatusCode)
	}

	var gbResp googleBooksResponse
	if err := json.NewDecoder(resp.Body).Decode(&gbResp); err != nil {
		return nil, fmt.Errorf("failed to decode Google Books response: %w", err)
	}

	results := make([]Record, 0, len(gbResp.Items))
	for _, item := range gbResp.Items {
		vi := item.VolumeInfo
		rec := Record{
			Source:      c.Name(),
			Title:       vi.Title,
			Subtitle:    vi.Subtitle,
			Publisher:   vi.Publisher,
			Description: vi.Description,
			Language:    vi.Language,
			Genres:      vi.Categories,
			ReleaseDate: vi.PublishedDate,
		}
		if len(vi.Authors) > 0 {
			rec.Author = strings.Join(vi.Authors, ", ")
		}
		for _, id := range vi.IndustryIdentifiers {
			if id.Type == "ISBN_13" {
				rec.ISBN = id.Identifier
			} else if id.Type == "ISBN_10" && rec.ISBN == "" {
				rec.ISBN = id.Identifier
			}
		}
		if vi.ImageLinks != nil && vi.ImageLinks.Thumbnail != "" {
			rec.CoverURL = vi.ImageLinks.Thumbnail
		}
		results = append(results, rec)
	}
	return results, nil
}

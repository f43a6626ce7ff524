// file: internal/sources/audible.go
// version: 2.0.0
// guid: c3d4e5f6-a7b8-9c0d-1e2f-a3b4c5d6e7f8

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// AudibleClient fetches retailer metadata from the Audible catalog products
// API. It supplies the fields only a retailer knows reliably: ASIN, release
// date, narrator, series/sequence and a large cover image.
type AudibleClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewAudibleClient creates a new Audible catalog client.
func NewAudibleClient(timeout time.Duration) *AudibleClient {
	baseURL := os.Getenv("AUDIBLE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.audible.com/1.0"
	}
	return newAudibleClient(baseURL, timeout)
}

// NewAudibleClientWithBaseURL creates a client with a custom base URL (for testing).
func NewAudibleClientWithBaseURL(baseURL string) *AudibleClient {
	return newAudibleClient(baseURL, 30*time.Second)
}

func newAudibleClient(baseURL string, timeout time.Duration) *AudibleClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AudibleClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(1), 2),
	}
}

// Name returns the display name for this metadata source.
func (c *AudibleClient) Name() string {
	return "Audible"
}

type audibleSearchResponse struct {
	Products []audibleProduct `json:"products"`
}

type audibleProduct struct {
	ASIN             string            `json:"asin"`
	Title            string            `json:"title"`
	Subtitle         string            `json:"subtitle"`
	Authors          []audiblePerson   `json:"authors"`
	Narrators        []audiblePerson   `json:"narrators"`
	PublisherName    string            `json:"publisher_name"`
	ReleaseDate      string            `json:"release_date"`
	Language         string            `json:"language"`
	RuntimeLength    int               `json:"runtime_length_min"`
	FormatType       string            `json:"format_type"` // "unabridged" or "abridged"
	PublisherSummary string            `json:"publisher_summary"`
	ProductImages    map[string]string `json:"product_images"`
	Series           []audibleSeries   `json:"series"`
	CategoryLadders  []audibleLadder   `json:"category_ladders"`
}

type audiblePerson struct {
	Name string `json:"name"`
	ASIN string `json:"asin,omitempty"`
}

type audibleSeries struct {
	ASIN     string `json:"asin"`
	Title    string `json:"title"`
	Sequence string `json:"sequence"`
}

type audibleLadder struct {
	Ladder []audiblePerson `json:"ladder"`
	Root   string          `json:"root"`
}

// Search queries the catalog products endpoint by title and author.
func (c *AudibleClient) Search(ctx context.Context, title, author string) ([]Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("title", title)
	if author != "" {
		params.Set("author", author)
	}
	params.Set("num_results", "5")
	params.Set("response_groups", "product_desc,product_attrs,product_extended_attrs,media,series,category_ladders,contributors")

	searchURL := fmt.Sprintf("%s/catalog/products?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search Audible: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Audible API returned status %d", resp.StatusCode)
	}

	var searchResp audibleSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode Audible response: %w", err)
	}

	results := make([]Record, 0, len(searchResp.Products))
	for _, p := range searchResp.Products {
		results = append(results, c.productToRecord(&p))
	}
	return results, nil
}

// LookupByASIN fetches one product directly by its ASIN.
func (c *AudibleClient) LookupByASIN(ctx context.Context, asin string) (*Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	productURL := fmt.Sprintf("%s/catalog/products/%s?response_groups=product_desc,product_attrs,media,series,contributors",
		c.baseURL, url.PathEscape(asin))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, productURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup Audible product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Audible product lookup returned status %d", resp.StatusCode)
	}

	var wrapper struct {
		Product audibleProduct `json:"product"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode Audible product: %w", err)
	}

	rec := c.productToRecord(&wrapper.Product)
	return &rec, nil
}

func (c *AudibleClient) productToRecord(p *audibleProduct) Record {
	rec := Record{
		Source:         c.Name(),
		Title:          p.Title,
		Subtitle:       p.Subtitle,
		ASIN:           p.ASIN,
		Publisher:      p.PublisherName,
		ReleaseDate:    p.ReleaseDate,
		Language:       p.Language,
		Description:    p.PublisherSummary,
		RuntimeMinutes: p.RuntimeLength,
		Abridged:       strings.EqualFold(p.FormatType, "abridged"),
	}

	names := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		names = append(names, a.Name)
	}
	if len(names) > 0 {
		rec.Author = strings.Join(names, ", ")
	}

	narrators := make([]string, 0, len(p.Narrators))
	for _, n := range p.Narrators {
		narrators = append(narrators, n.Name)
	}
	if len(narrators) > 0 {
		rec.Narrator = strings.Join(narrators, ", ")
	}

	if len(p.Series) > 0 {
		rec.Series = p.Series[0].Title
		rec.Sequence = p.Series[0].Sequence
	}

	for _, ladder := range p.CategoryLadders {
		for _, step := range ladder.Ladder {
			rec.Genres = append(rec.Genres, step.Name)
		}
	}

	// product_images keys are pixel sizes, e.g. "500", "1024", "2400".
	best := 0
	for size, u := range p.ProductImages {
		if n, err := strconv.Atoi(size); err == nil && n > best {
			best = n
			rec.CoverURL = u
			rec.CoverWidth = n
			rec.CoverHeight = n
		}
	}

	return rec
}

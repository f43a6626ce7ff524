// file: internal/covers/fetch.go
// version: 1.0.0
// guid: 8e9f0a1b-2c3d-4e5f-6a7b-8c9d0e1f2a3b

package covers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxCoverBytes bounds a single cover download.
const maxCoverBytes = 10 * 1024 * 1024

// Fetcher downloads cover images over HTTP. A zero-value client is not
// usable; construct with NewFetcher.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a cover fetcher with a fixed request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{httpClient: &http.Client{Timeout: timeout}}
}

// Fetch downloads a cover image and returns its bytes plus MIME type.
// Only image/* content types are accepted; downloads are size-limited.
func (f *Fetcher) Fetch(coverURL string) ([]byte, string, error) {
	if coverURL == "" {
		return nil, "", fmt.Errorf("empty cover URL")
	}

	resp, err := f.httpClient.Get(coverURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("cover download returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("unexpected content type: %s", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCoverBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read cover body: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty cover payload")
	}
	return data, contentType, nil
}

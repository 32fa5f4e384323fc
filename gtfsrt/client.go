package gtfsrt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const maxFeedBytes = 32 << 20

// Client fetches GTFS-RT protobuf data over HTTP or from disk
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client whose HTTP requests time out after timeout
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the raw feed bytes from an http(s) URL or a file path
func (c *Client) Fetch(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("empty feed source")
	}
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		b, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read feed: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", src, err)
	}
	req.Header.Set("Accept", "application/x-protobuf")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", src, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, src)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src, err)
	}
	if len(b) > maxFeedBytes {
		return nil, fmt.Errorf("feed from %s exceeds %d bytes", src, maxFeedBytes)
	}
	return b, nil
}

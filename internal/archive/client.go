// Package archive talks to the remote image archive: one endpoint for the
// metadata catalog, plain GETs for the image files themselves.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/bingwall-go/bingwall/internal/wallpaper"
)

// Client fetches catalog metadata and image bytes.
type Client struct {
	HTTPClient *http.Client
}

// NewClient creates a client with a sane default timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCatalog retrieves and decodes the remote image catalog from the
// metadata endpoint URL.
func (c *Client) FetchCatalog(ctx context.Context, url string) (*wallpaper.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build metadata request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata endpoint returned status %d", resp.StatusCode)
	}

	var catalog wallpaper.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &catalog, nil
}

// FetchRaw retrieves the metadata endpoint body without imposing the catalog
// schema, for raw state inspection.
func (c *Client) FetchRaw(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build metadata request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata endpoint returned status %d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return raw, nil
}

// Download GETs url and writes the body to dest. The file is created
// exclusively: when dest already exists the download succeeds vacuously,
// which absorbs the race between the caller's existence check and a
// concurrent writer.
func (c *Client) Download(ctx context.Context, url, dest string) error {
	file, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build image request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image URL returned status %d", resp.StatusCode)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("write image data: %w", err)
	}
	return nil
}

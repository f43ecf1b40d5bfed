package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bingwall-go/bingwall/internal/config"
)

// Downloader fetches image bytes from a URL into a local file. Implemented
// by archive.Client.
type Downloader interface {
	Download(ctx context.Context, url, dest string) error
}

// Sync reconciles the remote catalog into the local one and makes sure every
// tracked image exists on disk. Newly seen records are merged (dedup by
// identity; records the remote no longer offers are kept) and their titles
// returned in remote order. Every record whose derived file is missing gets
// its own download goroutine; the catalogs are small enough that an
// unbounded fan-out is fine.
//
// All downloads are awaited before returning; failures are aggregated into a
// single error. Merges already applied are not rolled back on failure —
// re-running sync is cheap and idempotent, so preserving the metadata beats
// all-or-nothing atomicity.
func Sync(ctx context.Context, local *Catalog, remote *Catalog, dl Downloader, cfg *config.Config) ([]string, error) {
	var tracked []string
	for _, img := range remote.Images {
		if local.Insert(img) {
			tracked = append(tracked, img.Title)
		}
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(local.Images))
	for _, img := range local.Images {
		name := img.FileName(cfg)
		dest := filepath.Join(cfg.Project.DataDir, name)
		if _, err := os.Stat(dest); err == nil {
			continue
		}

		slog.Debug("downloading image", "file", name)
		wg.Add(1)
		go func(url, dest, name string) {
			defer wg.Done()
			if err := dl.Download(ctx, url, dest); err != nil {
				errCh <- fmt.Errorf("download %s: %w", name, err)
			}
		}(img.DownloadURL(cfg), dest, name)
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return tracked, errors.Join(errs...)
}

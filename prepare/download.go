// SPDX-License-Identifier: EPL-2.0

package prepare

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Downloader fetches remote files over HTTP.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a Downloader whose requests give up after timeout.
// A timeout of zero means no limit beyond the request context.
func NewDownloader(timeout time.Duration) *Downloader {
	return &Downloader{client: &http.Client{Timeout: timeout}}
}

// Download writes the body of url to dest and returns the number of bytes
// written. The body is streamed to a temporary file next to dest, which
// is renamed into place only when the transfer completes.
func (d *Downloader) Download(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %s returned %d", ErrDownloadStatus, url, resp.StatusCode)
	}

	part := dest + ".part"
	f, err := os.Create(part)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", part, err)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(part)
		return n, fmt.Errorf("download %s: %w", url, err)
	}

	if err := os.Rename(part, dest); err != nil {
		_ = os.Remove(part)
		return n, fmt.Errorf("rename %s: %w", part, err)
	}

	return n, nil
}

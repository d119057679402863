package netx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/medianest/internal/common"
)

// Download fetches url with a plain GET and copies the body to w. Full
// resolution image URLs are public, so no store credential is attached.
// It returns the number of bytes written.
func Download(ctx context.Context, client *http.Client, url string, w io.Writer) (n int64, retErr error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrTransport, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			retErr = errors.Join(retErr, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return 0, fmt.Errorf("%w: download failed: %s; body: %s", common.ErrStoreRejection, resp.Status, string(b))
	}

	n, err = io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("%w: %w", common.ErrTransport, err)
	}
	return n, nil
}

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cnaize/bouncer/src/core/filter"
)

// userAgent identifies list requests to upstream providers.
const userAgent = "bouncer/1.0"

const defaultTimeout = 30 * time.Second

var _ filter.ListFetcher = (*HTTP)(nil)

// HTTP fetches remote address lists. Network errors and 5xx responses
// are transient; other non-200 responses fail with filter.ErrPermanent.
type HTTP struct {
	client *http.Client
}

func NewHTTP(timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTP{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (f *HTTP) Fetch(ctx context.Context, url string) ([]byte, error) {
	// create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	// do request
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do request: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%s: status %d", url, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", url, resp.StatusCode, filter.ErrPermanent)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", url, err)
	}

	return body, nil
}

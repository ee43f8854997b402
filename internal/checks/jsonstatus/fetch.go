package jsonstatus

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/opsgrid/checks/internal/check"
)

// Fetcher retrieves one raw response body from a target URL. Having the
// check depend on this one method keeps the classify/aggregate core
// testable with no network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches over HTTP(S) with a bounded client timeout.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch performs exactly one GET against the URL and returns the body.
// A URL without a scheme defaults to http://. Connection failures,
// timeouts, and non-2xx responses all surface as transport errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", check.Transportf("invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", check.Transportf("connection to %q failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", check.Transportf("call returned HTTP code %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", check.Transportf("reading response from %q failed: %v", url, err)
	}

	slog.Debug("fetched response", "url", url, "status", resp.StatusCode, "body", string(body))
	return string(body), nil
}

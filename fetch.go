package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultConfigURL is the endpoint serving the console configuration.
const DefaultConfigURL = "/configuration.pinpoint"

// ConfigFetcher fetches the remote console configuration.
type ConfigFetcher interface {
	FetchConfig(ctx context.Context) (map[string]interface{}, error)
}

// HTTPConfigFetcher fetches configuration with a GET request.
type HTTPConfigFetcher struct {
	Client *http.Client // http.DefaultClient if nil
	URL    string
}

// NewHTTPConfigFetcher returns a fetcher for url.
func NewHTTPConfigFetcher(url string) *HTTPConfigFetcher {
	return &HTTPConfigFetcher{URL: url}
}

// FetchConfig implements ConfigFetcher.  Any non-2xx status is an error.
func (f *HTTPConfigFetcher) FetchConfig(ctx context.Context) (map[string]interface{}, error) {

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetching %s: unexpected status %s", f.URL, resp.Status)
	}

	var ret map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&ret); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.URL, err)
	}

	return ret, nil
}

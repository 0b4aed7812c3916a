// Package http provides an HTTP-based implementation of paw.Fetcher.
// It performs plain GET requests; JavaScript-rendered content is out of
// scope.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pawhq/paw"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements paw.Fetcher at compile time.
var _ paw.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// Headers and timeout are fixed at construction and applied to every
// request.
type Fetcher struct {
	client  *http.Client
	headers map[string]string
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeaders sets headers sent with every request. A User-Agent entry
// overrides the default.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		for k, v := range headers {
			f.headers[k] = v
		}
	}
}

// WithClient sets a custom HTTP client. The client is used as-is; its own
// timeout applies and WithTimeout has no effect on it.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		headers: map[string]string{"User-Agent": paw.DefaultUserAgent},
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses and non-HTML content types are rejected with EINVALID.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", paw.Errorf(paw.EINVALID, "invalid URL %q: must start with http:// or https://", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", paw.Errorf(paw.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") {
		return "", paw.Errorf(paw.EINVALID, "URL does not contain HTML content: %s", url)
	}

	// Decode to UTF-8 based on the declared or sniffed charset.
	reader, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

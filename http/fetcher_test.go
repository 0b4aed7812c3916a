package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pawhq/paw"
	pawhttp "github.com/pawhq/paw/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements paw.Fetcher at compile time.
var _ paw.Fetcher = (*pawhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches HTML content", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello</body></html>"))
		}))
		defer srv.Close()

		f := pawhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "Hello")
	})

	t.Run("sends default user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		f := pawhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, paw.DefaultUserAgent, gotUA)
	})

	t.Run("sends custom headers", func(t *testing.T) {
		t.Parallel()

		var gotAuth, gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		f := pawhttp.NewFetcher(pawhttp.WithHeaders(map[string]string{
			"Authorization": "Bearer token",
			"User-Agent":    "custom-agent",
		}))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "Bearer token", gotAuth)
		assert.Equal(t, "custom-agent", gotUA)
	})

	t.Run("rejects non-HTML content type", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4"))
		}))
		defer srv.Close()

		f := pawhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})

	t.Run("rejects non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		f := pawhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, paw.EUNAVAILABLE, paw.ErrorCode(err))
	})

	t.Run("rejects invalid URL scheme", func(t *testing.T) {
		t.Parallel()

		f := pawhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "ftp://example.com")

		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		f := pawhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, srv.URL)

		require.Error(t, err)
	})

	t.Run("leaves custom client untouched", func(t *testing.T) {
		t.Parallel()

		client := &nethttp.Client{Timeout: 3 * time.Second}

		f := pawhttp.NewFetcher(pawhttp.WithClient(client), pawhttp.WithTimeout(time.Second))
		defer f.Close()

		assert.Equal(t, 3*time.Second, client.Timeout)
	})

	t.Run("decodes non-UTF-8 charsets", func(t *testing.T) {
		t.Parallel()

		// "café" encoded as ISO-8859-1 (é = 0xE9)
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<html><body>caf\xe9</body></html>"))
		}))
		defer srv.Close()

		f := pawhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "café")
	})
}

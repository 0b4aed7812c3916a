package main_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pawhq/paw"
	main "github.com/pawhq/paw/cmd/paw"
	"github.com/pawhq/paw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders combined markdown", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(map[string]string{
			"https://example.com": "Home",
		})

		cmd := &main.CrawlCmd{URL: "https://example.com", Format: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "URL: https://example.com")
		assert.Contains(t, stdout.String(), "# Home")
	})

	t.Run("renders JSON mapping URLs to content", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(map[string]string{
			"https://example.com": "Home",
		})

		cmd := &main.CrawlCmd{URL: "https://example.com", Format: "json"}
		err := cmd.Run(deps)

		require.NoError(t, err)

		var m map[string]string
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &m))
		assert.Equal(t, "# Home", m["https://example.com"])
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps(nil)

		cmd := &main.CrawlCmd{URL: "https://example.com", Format: "xml"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("archives crawl with --save", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps(map[string]string{
			"https://example.com": "Home",
		})

		var saved *paw.Crawl
		deps.Crawls = &mock.CrawlService{
			CreateCrawlFn: func(_ context.Context, c *paw.Crawl) error {
				c.ID = "crawl-123"
				saved = c
				return nil
			},
		}

		cmd := &main.CrawlCmd{URL: "https://example.com", Format: "markdown", Save: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com", saved.SeedURL)
		require.Len(t, saved.Pages, 1)
		assert.Contains(t, stderr.String(), "Saved crawl crawl-123")
	})

	t.Run("seeds crawl from sitemap discovery", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newTestDeps(map[string]string{
			"https://example.com":       "Home",
			"https://example.com/docs":  "Docs",
			"https://example.com/about": "About",
		})
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string) ([]string, error) {
				return []string{"https://example.com/docs", "https://example.com/about"}, nil
			},
		}

		cmd := &main.CrawlCmd{URL: "https://example.com", Format: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "Discovered 2 sitemap URLs")
		assert.Contains(t, stdout.String(), "# Docs")
		assert.Contains(t, stdout.String(), "# About")
	})
}

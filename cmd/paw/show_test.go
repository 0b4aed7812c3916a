package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pawhq/paw"
	main "github.com/pawhq/paw/cmd/paw"
	"github.com/pawhq/paw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archivedCrawl() *paw.Crawl {
	return &paw.Crawl{
		ID:        "crawl-123",
		SeedURL:   "https://example.com",
		MaxDepth:  1,
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Pages: []*paw.Page{
			{URL: "https://example.com", Title: "Home", Content: "# Home"},
			{URL: "https://example.com/about", Title: "About", Content: "# About"},
		},
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders archived crawl as markdown", func(t *testing.T) {
		t.Parallel()

		crawls := &mock.CrawlService{
			FindCrawlByIDFn: func(_ context.Context, id string) (*paw.Crawl, error) {
				return archivedCrawl(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Crawls: crawls,
		}

		cmd := &main.ShowCmd{ID: "crawl-123", Format: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "URL: https://example.com")
		assert.Contains(t, output, "# Home")
		assert.Contains(t, output, "# About")
	})

	t.Run("reports ENOTFOUND with hint", func(t *testing.T) {
		t.Parallel()

		crawls := &mock.CrawlService{
			FindCrawlByIDFn: func(_ context.Context, id string) (*paw.Crawl, error) {
				return nil, paw.Errorf(paw.ENOTFOUND, "crawl not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Crawls: crawls,
		}

		cmd := &main.ShowCmd{ID: "missing", Format: "markdown"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
		assert.Contains(t, stderr.String(), "paw list")
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ShowCmd{ID: "crawl-123", Format: "xml"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})
}

package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pawhq/paw"
	main "github.com/pawhq/paw/cmd/paw"
	"github.com/pawhq/paw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists crawls with ID, date, depth, and seed URL", func(t *testing.T) {
		t.Parallel()

		crawls := &mock.CrawlService{
			FindCrawlsFn: func(_ context.Context, _ paw.CrawlFilter) ([]*paw.Crawl, error) {
				return []*paw.Crawl{
					{
						ID:        "crawl-123",
						SeedURL:   "https://react.dev",
						MaxDepth:  2,
						CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "crawl-456",
						SeedURL:   "https://go.dev",
						MaxDepth:  1,
						CreatedAt: time.Date(2026, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Crawls: crawls,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "crawl-123")
		assert.Contains(t, output, "crawl-456")
		assert.Contains(t, output, "https://react.dev")
		assert.Contains(t, output, "https://go.dev")
		assert.Contains(t, output, "depth=2")
		assert.Contains(t, output, "2026-01-15 10:00")
	})

	t.Run("shows helpful message when no crawls exist", func(t *testing.T) {
		t.Parallel()

		crawls := &mock.CrawlService{
			FindCrawlsFn: func(_ context.Context, _ paw.CrawlFilter) ([]*paw.Crawl, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Crawls: crawls,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No crawls")
	})

	t.Run("returns error when FindCrawls fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		crawls := &mock.CrawlService{
			FindCrawlsFn: func(_ context.Context, _ paw.CrawlFilter) ([]*paw.Crawl, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Crawls: crawls,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

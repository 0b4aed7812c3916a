package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pawhq/paw"
	main "github.com/pawhq/paw/cmd/paw"
	"github.com/pawhq/paw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force to delete", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{ID: "crawl-123"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes crawl with --force", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		crawls := &mock.CrawlService{
			DeleteCrawlFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Crawls: crawls,
		}

		cmd := &main.DeleteCmd{ID: "crawl-123", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "crawl-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted crawl")
	})

	t.Run("reports ENOTFOUND with hint", func(t *testing.T) {
		t.Parallel()

		crawls := &mock.CrawlService{
			DeleteCrawlFn: func(_ context.Context, id string) error {
				return paw.Errorf(paw.ENOTFOUND, "crawl not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Crawls: crawls,
		}

		cmd := &main.DeleteCmd{ID: "missing", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
		assert.Contains(t, stderr.String(), "paw list")
	})
}

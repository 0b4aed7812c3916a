package paw_test

import (
	"encoding/json"
	"testing"

	"github.com/pawhq/paw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("accepts markdown", func(t *testing.T) {
		t.Parallel()

		format, err := paw.ParseFormat("markdown")
		require.NoError(t, err)
		assert.Equal(t, paw.FormatMarkdown, format)
	})

	t.Run("accepts json", func(t *testing.T) {
		t.Parallel()

		format, err := paw.ParseFormat("json")
		require.NoError(t, err)
		assert.Equal(t, paw.FormatJSON, format)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := paw.ParseFormat("xml")
		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})
}

func testResult() *paw.CrawlResult {
	return &paw.CrawlResult{
		SeedURL:  "https://example.com",
		MaxDepth: 1,
		Pages: []*paw.Page{
			{URL: "https://example.com", Title: "Home", Content: "# Home"},
			{URL: "https://example.com/about", Title: "About", Content: "# About"},
		},
	}
}

func TestCrawlResult_Markdown(t *testing.T) {
	t.Parallel()

	got := testResult().Markdown()

	assert.Equal(t, "URL: https://example.com\n\n# Home\n\n---\n\nURL: https://example.com/about\n\n# About", got)
}

func TestCrawlResult_JSON(t *testing.T) {
	t.Parallel()

	got, err := testResult().JSON()
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal([]byte(got), &m))
	assert.Equal(t, map[string]string{
		"https://example.com":       "# Home",
		"https://example.com/about": "# About",
	}, m)
}

func TestCrawlResult_Render(t *testing.T) {
	t.Parallel()

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()

		got, err := testResult().Render(paw.FormatMarkdown)
		require.NoError(t, err)
		assert.Contains(t, got, "URL: https://example.com")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		got, err := testResult().Render(paw.FormatJSON)
		require.NoError(t, err)
		assert.Contains(t, got, "\"https://example.com\"")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := testResult().Render(paw.Format("xml"))
		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		err := (&paw.Page{}).Validate()
		require.Error(t, err)
		assert.Equal(t, paw.EINVALID, paw.ErrorCode(err))
	})

	t.Run("accepts page with URL", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, (&paw.Page{URL: "https://example.com"}).Validate())
	})
}

package paw

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Page represents a single scraped page. Pages are immutable once produced
// by a scrape or crawl.
type Page struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	Depth       int       `json:"depth"`
	Position    int       `json:"position"` // visitation order within a crawl
	Links       []string  `json:"links,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// Format selects the rendering of a crawl result.
type Format string

// Supported crawl output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a format string.
// Returns EINVALID for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMarkdown, FormatJSON:
		return Format(s), nil
	default:
		return "", Errorf(EINVALID, "unknown format %q (want %q or %q)", s, FormatMarkdown, FormatJSON)
	}
}

// CrawlResult holds the pages visited by a single crawl, in visitation
// order. It is owned exclusively by the crawl invocation that produced it.
type CrawlResult struct {
	SeedURL  string  `json:"seedUrl"`
	MaxDepth int     `json:"maxDepth"`
	Pages    []*Page `json:"pages"`
	Failed   int     `json:"failed"`
}

// Markdown renders the result as combined markdown: one "URL:" block per
// page, separated by horizontal rules.
func (r *CrawlResult) Markdown() string {
	parts := make([]string, 0, len(r.Pages))
	for _, page := range r.Pages {
		parts = append(parts, "URL: "+page.URL+"\n\n"+page.Content)
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// JSON renders the result as a JSON object mapping each visited URL to its
// markdown content. Keys are emitted in sorted order.
func (r *CrawlResult) JSON() (string, error) {
	m := make(map[string]string, len(r.Pages))
	for _, page := range r.Pages {
		m[page.URL] = page.Content
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Render returns the result in the requested format.
func (r *CrawlResult) Render(format Format) (string, error) {
	switch format {
	case FormatMarkdown:
		return r.Markdown(), nil
	case FormatJSON:
		return r.JSON()
	default:
		return "", Errorf(EINVALID, "unknown format %q", format)
	}
}

// PageWriter persists pages outside the crawl result, e.g. as files.
type PageWriter interface {
	WritePage(ctx context.Context, page *Page) error
}

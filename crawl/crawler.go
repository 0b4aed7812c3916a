// Package crawl provides scrape, crawl, and extract orchestration.
// It coordinates fetching, link discovery, markdown conversion, and
// schema extraction over a breadth-first traversal.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pawhq/paw"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// DefaultMaxPages limits the number of pages visited per crawl to
	// prevent runaway crawls.
	DefaultMaxPages = 1000
)

// Crawler orchestrates scraping, crawling, and extraction.
// All fields except Pages and Extractor are required. Configuration is
// fixed at construction and applied uniformly to every operation.
type Crawler struct {
	Fetcher   paw.Fetcher
	Links     paw.LinkSelector
	Contents  paw.ContentExtractor
	Converter paw.Converter
	Limiter   paw.DomainLimiter

	// Pages, if set, receives every crawled page (e.g. a file writer).
	Pages paw.PageWriter

	// Extractor performs schema extraction; required only for Extract.
	Extractor paw.SchemaExtractor

	// RetryDelays configures fetch retry backoff. Nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	// MaxPages caps pages visited per crawl. Zero means DefaultMaxPages.
	MaxPages int
}

// CrawlOptions configures a single crawl invocation.
type CrawlOptions struct {
	// MaxDepth bounds the traversal; 0 visits only the seed page.
	MaxDepth int

	// Seeds are additional URLs entered into the frontier at depth 0,
	// e.g. from sitemap discovery.
	Seeds []string
}

// ExtractOptions configures a single extract invocation.
type ExtractOptions struct {
	// MaxDepth bounds the crawl feeding the extraction; defaults to 0
	// (seed page only).
	MaxDepth int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Depth int
	Count int // pages visited so far
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Scrape fetches a single page and converts it to markdown.
func (c *Crawler) Scrape(ctx context.Context, rawURL string) (*paw.Page, error) {
	if err := validateSeed(rawURL); err != nil {
		return nil, err
	}
	return c.processPage(ctx, rawURL, 0, false)
}

// Crawl performs a breadth-first traversal from the seed URL up to
// opts.MaxDepth, visiting each URL at most once. Pages are processed
// sequentially with the configured per-domain delay between fetches.
// Failed pages are counted and skipped; the traversal continues.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, opts CrawlOptions, progress ProgressFunc) (*paw.CrawlResult, error) {
	if err := validateSeed(seedURL); err != nil {
		return nil, err
	}
	if opts.MaxDepth < 0 {
		return nil, paw.Errorf(paw.EINVALID, "max depth must be non-negative")
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(paw.Link{
		URL:      seedURL,
		Priority: paw.PriorityNavigation,
		Depth:    0,
	})
	for _, seed := range opts.Seeds {
		frontier.Push(paw.Link{
			URL:      seed,
			Priority: paw.PriorityContent,
			Depth:    0,
		})
	}

	result := &paw.CrawlResult{
		SeedURL:  seedURL,
		MaxDepth: opts.MaxDepth,
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, URL: seedURL})
	}

	visited := 0
	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if visited >= maxPages {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		visited++

		linkURL, err := url.Parse(link.URL)
		if err != nil {
			result.Failed++
			continue
		}
		if err := c.Limiter.Wait(ctx, linkURL.Host); err != nil {
			return nil, err
		}

		page, err := c.processPage(ctx, link.URL, link.Depth, link.Depth < opts.MaxDepth)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					URL:   link.URL,
					Depth: link.Depth,
					Count: len(result.Pages),
					Error: err,
				})
			}
			continue
		}

		// Depth along any path never decreases: links found at depth d
		// enter the frontier at d+1.
		for _, discovered := range page.Links {
			frontier.Push(paw.Link{
				URL:      discovered,
				Priority: paw.PriorityContent,
				Depth:    link.Depth + 1,
			})
		}

		page.Position = len(result.Pages)
		result.Pages = append(result.Pages, page)

		if c.Pages != nil {
			if err := c.Pages.WritePage(ctx, page); err != nil {
				return nil, fmt.Errorf("write page %s: %w", page.URL, err)
			}
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:  ProgressCompleted,
				URL:   link.URL,
				Depth: link.Depth,
				Count: len(result.Pages),
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Count: len(result.Pages)})
	}

	return result, nil
}

// Extract crawls from the seed URL (depth opts.MaxDepth, default 0),
// combines the pages into markdown, and maps the content onto the schema
// using the configured Extractor.
func (c *Crawler) Extract(ctx context.Context, seedURL string, schema *paw.Schema, opts ExtractOptions, progress ProgressFunc) (*paw.Extraction, error) {
	if c.Extractor == nil {
		return nil, paw.Errorf(paw.EINTERNAL, "no schema extractor configured")
	}
	if schema == nil {
		return nil, paw.Errorf(paw.EINVALID, "schema required")
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	result, err := c.Crawl(ctx, seedURL, CrawlOptions{MaxDepth: opts.MaxDepth}, progress)
	if err != nil {
		return nil, err
	}

	content := result.Markdown()
	if strings.TrimSpace(content) == "" {
		return nil, paw.Errorf(paw.EINVALID, "no content found at %s", seedURL)
	}

	extraction, err := c.Extractor.ExtractSchema(ctx, content, schema)
	if err != nil {
		return nil, err
	}
	extraction.SourceURL = seedURL

	return extraction, nil
}

// processPage fetches a URL and produces a Page. When collectLinks is true,
// outbound links are extracted from the raw HTML before conversion.
func (c *Crawler) processPage(ctx context.Context, rawURL string, depth int, collectLinks bool) (*paw.Page, error) {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetry(ctx, rawURL, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, err
	}

	var links []string
	if collectLinks {
		discovered, err := c.Links.ExtractLinks(html, rawURL)
		if err == nil {
			links = make([]string, 0, len(discovered))
			for _, l := range discovered {
				links = append(links, l.URL)
			}
		}
	}

	extracted, err := c.Contents.Extract(html)
	if err != nil {
		return nil, err
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &paw.Page{
		URL:         rawURL,
		Title:       extracted.Title,
		Content:     markdown,
		ContentHash: computeHash(markdown),
		Depth:       depth,
		Links:       links,
		FetchedAt:   time.Now().UTC(),
	}, nil
}

func validateSeed(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return paw.Errorf(paw.EINVALID, "invalid URL %q: must start with http:// or https://", rawURL)
	}
	return nil
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

package main

import (
	"fmt"

	"github.com/pawhq/paw"
	"github.com/pawhq/paw/crawl"
	"github.com/pawhq/paw/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	format, err := paw.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	if c.Dir != "" {
		deps.Crawler.Pages = fs.NewWriter(c.Dir)
	}

	opts := crawl.CrawlOptions{MaxDepth: c.Depth}

	// Sitemap discovery seeds the frontier alongside the seed URL.
	if deps.Sitemaps != nil {
		seeds, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: sitemap discovery failed: %s\n", paw.ErrorMessage(err))
		} else {
			opts.Seeds = seeds
			fmt.Fprintf(deps.Stderr, "Discovered %d sitemap URLs\n", len(seeds))
		}
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "  [%d] %s\n", event.Depth, crawl.TruncateURL(event.URL, 80))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 80), event.Error)
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stderr, "Crawled %d pages\n", event.Count)
		}
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, c.URL, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	if c.Save {
		record := &paw.Crawl{
			SeedURL:  result.SeedURL,
			MaxDepth: result.MaxDepth,
			Pages:    result.Pages,
		}
		if err := deps.Crawls.CreateCrawl(deps.Ctx, record); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved crawl %s\n", record.ID)
	}

	output, err := result.Render(format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	return writeOutput(deps, c.Out, output)
}

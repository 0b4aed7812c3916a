package main

import (
	"fmt"

	"github.com/pawhq/paw"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	format, err := paw.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	record, err := deps.Crawls.FindCrawlByID(deps.Ctx, c.ID)
	if err != nil {
		if paw.ErrorCode(err) == paw.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: crawl %q not found. Use 'paw list' to see archived crawls.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		}
		return err
	}

	result := &paw.CrawlResult{
		SeedURL:  record.SeedURL,
		MaxDepth: record.MaxDepth,
		Pages:    record.Pages,
	}

	output, err := result.Render(format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, output)
	return nil
}

package main

import (
	"fmt"

	"github.com/pawhq/paw"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	crawls, err := deps.Crawls.FindCrawls(deps.Ctx, paw.CrawlFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	if len(crawls) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawls found. Use 'paw crawl --save' to archive one.")
		return nil
	}

	for _, c := range crawls {
		fmt.Fprintf(deps.Stdout, "%s  %s  depth=%d  %s\n",
			c.ID, c.CreatedAt.Format("2006-01-02 15:04"), c.MaxDepth, c.SeedURL)
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/pawhq/paw"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	page, err := deps.Crawler.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	return writeOutput(deps, c.Out, page.Content)
}

// writeOutput writes content to the given path, or stdout when the path
// is empty.
func writeOutput(deps *Dependencies, path, content string) error {
	if path == "" {
		fmt.Fprintln(deps.Stdout, content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stderr, "Wrote %s\n", path)
	return nil
}

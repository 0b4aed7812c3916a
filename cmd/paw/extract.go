package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pawhq/paw"
	"github.com/pawhq/paw/crawl"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Schema)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read schema file: %v\n", err)
		return err
	}

	schema, err := paw.ParseSchema(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "  [%d] %s\n", event.Depth, crawl.TruncateURL(event.URL, 80))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 80), event.Error)
		}
	}

	extraction, err := deps.Crawler.Extract(deps.Ctx, c.URL, schema, crawl.ExtractOptions{MaxDepth: c.Depth}, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		return err
	}

	output, err := json.MarshalIndent(extraction.Data, "", "  ")
	if err != nil {
		return err
	}

	return writeOutput(deps, c.Out, string(output))
}

package main

import (
	"fmt"

	"github.com/pawhq/paw"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return paw.Errorf(paw.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Crawls.DeleteCrawl(deps.Ctx, c.ID); err != nil {
		if paw.ErrorCode(err) == paw.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: crawl %q not found. Use 'paw list' to see archived crawls.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", paw.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted crawl %q\n", c.ID)
	return nil
}

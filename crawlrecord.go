package paw

import (
	"context"
	"time"
)

// Crawl is an archived crawl invocation and its pages.
type Crawl struct {
	ID        string    `json:"id"`
	SeedURL   string    `json:"seedUrl"`
	MaxDepth  int       `json:"maxDepth"`
	CreatedAt time.Time `json:"createdAt"`

	// Pages in visitation order. Populated on create and on find.
	Pages []*Page `json:"pages,omitempty"`
}

// Validate returns an error if the crawl contains invalid fields.
func (c *Crawl) Validate() error {
	if c.SeedURL == "" {
		return Errorf(EINVALID, "crawl seed URL required")
	}
	if c.MaxDepth < 0 {
		return Errorf(EINVALID, "crawl max depth must be non-negative")
	}
	return nil
}

// CrawlFilter represents a filter for FindCrawls.
type CrawlFilter struct {
	ID      *string `json:"id"`
	SeedURL *string `json:"seedUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CrawlService archives crawl results. A saved crawl owns its pages
// exclusively; deleting a crawl removes them.
type CrawlService interface {
	// CreateCrawl persists a crawl and its pages.
	CreateCrawl(ctx context.Context, crawl *Crawl) error

	// FindCrawlByID retrieves a crawl with its pages in visitation order.
	// Returns ENOTFOUND if the crawl does not exist.
	FindCrawlByID(ctx context.Context, id string) (*Crawl, error)

	// FindCrawls retrieves crawls matching the filter, without pages.
	FindCrawls(ctx context.Context, filter CrawlFilter) ([]*Crawl, error)

	// DeleteCrawl permanently removes a crawl and its pages.
	// Returns ENOTFOUND if the crawl does not exist.
	DeleteCrawl(ctx context.Context, id string) error
}

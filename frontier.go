package paw

import "context"

// URLFrontier manages a crawl queue with deduplication.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link Link) bool

	// Pop returns the next link in breadth-first order.
	// Returns false if the frontier is empty.
	Pop() (Link, bool)

	// Len returns the number of links in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter paces requests per domain.
type DomainLimiter interface {
	// Wait blocks until the configured delay allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

package paw

// LinkPriority orders links within one crawl depth level
// (higher = popped first).
type LinkPriority int

// Link priority levels for crawl ordering.
const (
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
)

// Link represents a discovered outbound link.
type Link struct {
	URL      string
	Text     string
	Priority LinkPriority
	Source   string // "nav", "content", "footer"
	Depth    int    // depth the link was assigned during a crawl
}

// LinkSelector extracts crawlable links from HTML.
// Implementations resolve relative URLs, strip fragments and query strings,
// and restrict results to the base URL's domain.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns discovered links.
	// The baseURL is used to resolve relative URLs and for domain scoping.
	ExtractLinks(html string, baseURL string) ([]Link, error)
}

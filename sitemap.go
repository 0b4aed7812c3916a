package paw

import "context"

// SitemapService discovers crawl seed URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverURLs finds URLs from the site's sitemap. It checks
	// robots.txt for Sitemap directives first, then falls back to
	// /sitemap.xml. Sitemap indexes are resolved recursively. Only URLs
	// on the base URL's domain are returned.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

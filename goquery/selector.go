// Package goquery provides HTML parsing implementations of paw.LinkSelector
// and paw.ContentExtractor using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pawhq/paw"
)

// Ensure Selector implements paw.LinkSelector at compile time.
var _ paw.LinkSelector = (*Selector)(nil)

// Selector extracts same-domain links from HTML. Links are normalized
// (fragments and query strings stripped) and deduplicated, keeping the
// highest priority occurrence.
type Selector struct{}

// NewSelector creates a new Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// ExtractLinks parses HTML and returns discovered links.
//
// Priority reflects where the link appears on the page (nav and sidebar
// above content, content above footer). Anchors outside any recognized
// region count as content. External links, mailto links, and fragment-only
// links are skipped.
func (s *Selector) ExtractLinks(html string, baseURL string) ([]paw.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, paw.Errorf(paw.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, paw.Errorf(paw.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []paw.Link

	extract := func(selector string, priority paw.LinkPriority, source string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" || strings.HasPrefix(href, "#") {
				return
			}
			if isNonHTTPLink(href) {
				return
			}

			resolved := normalizeURL(base, href)
			if resolved == "" {
				return
			}
			if !sameDomain(base, resolved) {
				return
			}

			if _, ok := seen[resolved]; ok {
				return
			}
			seen[resolved] = struct{}{}

			links = append(links, paw.Link{
				URL:      resolved,
				Text:     strings.TrimSpace(sel.Text()),
				Priority: priority,
				Source:   source,
			})
		})
	}

	// Passes run in descending priority order and the first occurrence
	// wins, so the catch-all pass only adds anchors outside every
	// recognized region.
	extract("nav a[href], aside a[href]", paw.PriorityNavigation, "nav")
	extract("main a[href], article a[href]", paw.PriorityContent, "content")
	extract("footer a[href]", paw.PriorityFooter, "footer")
	extract("a[href]", paw.PriorityContent, "content")

	return links, nil
}

// isNonHTTPLink reports whether the href uses a non-navigable scheme.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "data:")
}

// normalizeURL resolves href against base and strips the fragment and
// query string, so URLs differing only in those parts dedupe together.
func normalizeURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawQuery = ""
	return resolved.String()
}

// sameDomain checks that the resolved URL stays on the base URL's domain.
// A leading "www." is ignored so www and bare hosts compare equal.
func sameDomain(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return trimWWW(u.Host) == trimWWW(base.Host)
}

func trimWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}

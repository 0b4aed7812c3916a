package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pawhq/paw"
)

// Ensure Cleaner implements paw.ContentExtractor at compile time.
var _ paw.ContentExtractor = (*Cleaner)(nil)

// Cleaner is the default ContentExtractor. It keeps the whole document,
// removing only non-content tags, and reads the title from the <title>
// element. Use trafilatura.Extractor instead to isolate main content.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Extract returns the document with non-content tags removed.
func (c *Cleaner) Extract(html string) (*paw.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, paw.Errorf(paw.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, paw.Errorf(paw.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, meta, link, noscript, iframe, svg").Remove()

	content, err := doc.Html()
	if err != nil {
		return nil, err
	}

	return &paw.ExtractResult{
		Title:       title,
		ContentHTML: content,
	}, nil
}

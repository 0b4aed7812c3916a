// Package trafilatura provides a paw.ContentExtractor that isolates main
// content, removing navigation, footers, and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pawhq/paw"
	"golang.org/x/net/html"
)

// Ensure Extractor implements paw.ContentExtractor at compile time.
var _ paw.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura for content-only scraping.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of the page with boilerplate removed.
// The title comes from page metadata.
func (e *Extractor) Extract(rawHTML string) (*paw.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, paw.Errorf(paw.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &paw.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

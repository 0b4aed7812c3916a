// Package htmltomarkdown converts HTML to Markdown with configurable
// content filters.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/pawhq/paw"
)

// Tags removed before conversion regardless of filter configuration.
// They carry no prose content.
var strippedTags = []string{"script", "style", "meta", "link", "noscript", "iframe", "svg"}

var (
	multiNewlineRe  = regexp.MustCompile(`\n{3,}`)
	trailingSpaceRe = regexp.MustCompile(` +\n`)
)

// Ensure Converter implements paw.Converter at compile time.
var _ paw.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Filters are fixed at construction and applied to every conversion.
type Converter struct {
	conv    *converter.Converter
	filters paw.FilterOptions
}

// NewConverter creates a new Converter with the given filters.
func NewConverter(filters paw.FilterOptions) *Converter {
	plugins := []converter.Plugin{
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	}
	// Without the table plugin, table cells degrade to plain text, which
	// is the behavior IgnoreTables asks for.
	if !filters.IgnoreTables {
		plugins = append(plugins, table.NewTablePlugin())
	}

	return &Converter{
		conv:    converter.NewConverter(converter.WithPlugins(plugins...)),
		filters: filters,
	}
}

// Convert transforms HTML content into Markdown, applying the configured
// filters.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", paw.Errorf(paw.EINVALID, "empty HTML input")
	}

	prepared, err := c.preprocess(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(prepared)
	if err != nil {
		return "", err
	}

	return cleanMarkdown(result), nil
}

// preprocess rewrites the HTML so filtered constructs never reach the
// markdown renderer.
func (c *Converter) preprocess(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", paw.Errorf(paw.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, tag := range strippedTags {
		doc.Find(tag).Remove()
	}

	if c.filters.IgnoreImages {
		doc.Find("img, picture").Remove()
	}

	if c.filters.IgnoreLinks {
		unwrap(doc.Find("a"))
	} else if c.filters.IgnoreMailtoLinks {
		unwrap(doc.Find(`a[href^="mailto:"]`))
	}

	if c.filters.IgnoreEmphasis {
		unwrap(doc.Find("em, strong, i, b"))
	}

	out, err := doc.Html()
	if err != nil {
		return "", err
	}
	return out, nil
}

// unwrap replaces each element with its inner HTML, keeping the content
// but dropping the surrounding tag.
func unwrap(sel *goquery.Selection) {
	sel.Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil {
			return
		}
		s.ReplaceWithHtml(inner)
	})
}

// cleanMarkdown collapses runs of blank lines and strips trailing spaces.
func cleanMarkdown(markdown string) string {
	markdown = multiNewlineRe.ReplaceAllString(markdown, "\n\n")
	markdown = trailingSpaceRe.ReplaceAllString(markdown, "\n")
	return strings.TrimSpace(markdown)
}

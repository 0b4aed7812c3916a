package paw

// ExtractResult holds the page content prepared for markdown conversion.
type ExtractResult struct {
	// Title is the page title from document metadata.
	Title string

	// ContentHTML is the HTML to convert. Depending on the implementation
	// it is either the cleaned full document or the isolated main content.
	ContentHTML string
}

// ContentExtractor prepares raw HTML for conversion. Implementations range
// from simple tag stripping to full boilerplate removal.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the content to convert.
	Extract(html string) (*ExtractResult, error)
}

package paw

// FilterOptions are the boolean markdown filters applied during conversion.
// The zero value keeps every construct; each flag removes the corresponding
// markdown syntax from the output.
type FilterOptions struct {
	IgnoreLinks       bool
	IgnoreImages      bool
	IgnoreEmphasis    bool
	IgnoreTables      bool
	IgnoreMailtoLinks bool
}

// DefaultFilterOptions returns the filters enabled by default: all
// constructs are stripped, leaving plain prose markdown.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		IgnoreLinks:       true,
		IgnoreImages:      true,
		IgnoreEmphasis:    true,
		IgnoreTables:      true,
		IgnoreMailtoLinks: true,
	}
}

// Converter converts HTML to Markdown. Filter configuration is fixed at
// construction time and applied uniformly to every conversion.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

package mock

import "github.com/pawhq/paw"

var _ paw.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of paw.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*paw.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*paw.ExtractResult, error) {
	return e.ExtractFn(html)
}

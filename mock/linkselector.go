package mock

import "github.com/pawhq/paw"

var _ paw.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of paw.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]paw.Link, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]paw.Link, error) {
	return s.ExtractLinksFn(html, baseURL)
}

package mock

import "github.com/pawhq/paw"

var _ paw.Converter = (*Converter)(nil)

// Converter is a mock implementation of paw.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

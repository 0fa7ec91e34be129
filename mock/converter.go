package mock

import "github.com/fwojciec/mdview"

var _ mdview.Converter = (*Converter)(nil)

// Converter is a mock implementation of mdview.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package mock

import docscraper "github.com/josephcrawford99/custom-doc-scraper"

var _ docscraper.Converter = (*Converter)(nil)

// Converter is a mock implementation of docscraper.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

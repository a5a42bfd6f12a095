package mock

import docscraper "github.com/josephcrawford99/custom-doc-scraper"

var _ docscraper.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docscraper.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docscraper.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docscraper.ExtractResult, error) {
	return e.ExtractFn(html)
}

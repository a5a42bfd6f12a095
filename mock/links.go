package mock

import docscraper "github.com/josephcrawford99/custom-doc-scraper"

var _ docscraper.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docscraper.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, pageURL string, scope *docscraper.Scope) ([]docscraper.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html string, pageURL string, scope *docscraper.Scope) ([]docscraper.DiscoveredLink, error) {
	return e.ExtractLinksFn(html, pageURL, scope)
}

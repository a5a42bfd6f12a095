// Package readability provides content extraction using the go-readability
// port of Mozilla's Readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Ensure Extractor implements docscraper.Extractor at compile time.
var _ docscraper.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docscraper.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docscraper.Errorf(docscraper.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docscraper.Errorf(docscraper.ENOTFOUND, "no content region found: %v", err)
	}

	return &docscraper.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

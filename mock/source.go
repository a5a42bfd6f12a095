package mock

import (
	"context"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

var _ docscraper.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of docscraper.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, scope *docscraper.Scope) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, scope *docscraper.Scope) ([]string, error) {
	return s.DiscoverFn(ctx, scope)
}

package docscraper

import "context"

// URLSource discovers lesson URLs without fetching the entry page,
// e.g. from a site's sitemap.
type URLSource interface {
	// Discover returns in-scope URLs in source order, deduplicated.
	// An empty result means the source has nothing to offer and the
	// caller should fall back to link extraction.
	Discover(ctx context.Context, scope *Scope) ([]string, error)
}

package docscraper

// DiscoveredLink represents an in-scope lesson URL found on a page.
type DiscoveredLink struct {
	// URL is absolute and normalized (no fragment, no trailing slash).
	URL string

	// Text is the anchor text, trimmed.
	Text string

	// Source identifies where the link was found: "nav" when it came
	// from a navigation container, "page" from the whole-page fallback.
	Source string
}

// LinkExtractor produces the ordered, deduplicated set of lesson links
// from a page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns in-scope lesson links in
	// document order, unique by normalized URL (first occurrence wins).
	// Relative hrefs are resolved against pageURL. The entry page and
	// the scope base itself are never returned. An empty result is not
	// an error.
	ExtractLinks(html string, pageURL string, scope *Scope) ([]DiscoveredLink, error)
}

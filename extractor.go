package docscraper

// ExtractResult holds the content extracted from a lesson page.
type ExtractResult struct {
	// Title is the page title. May be empty when the page carries no
	// <title> element; callers are expected to derive a fallback.
	Title string

	// ContentHTML is the main-content region as an HTML fragment.
	ContentHTML string
}

// Extractor isolates the main-content region of a lesson page.
type Extractor interface {
	// Extract processes raw HTML and returns the page title and main
	// content. Returns an ENOTFOUND error when the page has no usable
	// content region; the caller skips such pages without aborting the
	// crawl.
	Extract(html string) (*ExtractResult, error)
}

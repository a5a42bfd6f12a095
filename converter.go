package docscraper

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown. Conversion is
	// best-effort: malformed-but-parseable HTML degrades to inner text
	// rather than failing.
	Convert(html string) (string, error)
}

package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Compile-time interface verification.
var _ docscraper.Extractor = (*ArticleExtractor)(nil)

// ArticleExtractor isolates lesson content using document structure: the
// first <article> element, falling back to <body>. The title comes from
// the document's <title> element.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// Extract processes raw HTML and returns the page title and main content.
// Returns an ENOTFOUND error when the page has neither an <article> nor a
// non-empty <body>.
func (e *ArticleExtractor) Extract(html string) (*docscraper.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docscraper.Errorf(docscraper.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	content := doc.Find("article").First()
	if content.Length() == 0 {
		// The HTML parser synthesizes <body> for any parseable input,
		// so require it to carry something before accepting it.
		body := doc.Find("body").First()
		if body.Length() == 0 || (body.Children().Length() == 0 && strings.TrimSpace(body.Text()) == "") {
			return nil, docscraper.Errorf(docscraper.ENOTFOUND, "no content region found")
		}
		content = body
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, docscraper.Errorf(docscraper.EINTERNAL, "failed to render content: %v", err)
	}

	return &docscraper.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

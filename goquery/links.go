// Package goquery provides CSS-selector based implementations of link
// extraction and content extraction.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Compile-time interface verification.
var _ docscraper.LinkExtractor = (*NavLinkExtractor)(nil)

// DefaultNavCandidates returns the ordered list of CSS selectors tried when
// looking for a navigation container. Site-specific selectors come first;
// generic sidebar and nav patterns follow. Supporting a new site usually
// means prepending a selector here rather than changing extraction logic.
func DefaultNavCandidates() []string {
	return []string{
		"div.sidebar_CUen",
		`nav[aria-label="Docs sidebar"]`,
		"aside.sidebar",
		".sidebar",
		"aside",
		`nav[role="navigation"]`,
	}
}

// NavLinkExtractor discovers lesson links with a navigation-first strategy:
// the first matching candidate selector supplies the links, and the whole
// page is scanned when no candidate matches or the container yields no
// usable in-scope links.
type NavLinkExtractor struct {
	candidates []string
}

// NewNavLinkExtractor creates a NavLinkExtractor. With no arguments the
// default candidate selectors are used.
func NewNavLinkExtractor(candidates ...string) *NavLinkExtractor {
	if len(candidates) == 0 {
		candidates = DefaultNavCandidates()
	}
	return &NavLinkExtractor{candidates: candidates}
}

// ExtractLinks parses HTML and returns in-scope lesson links in document
// order, unique by normalized URL. The page's own URL and the scope base
// are excluded so the entry page is never fetched twice.
func (e *NavLinkExtractor) ExtractLinks(html string, pageURL string, scope *docscraper.Scope) ([]docscraper.DiscoveredLink, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docscraper.Errorf(docscraper.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docscraper.Errorf(docscraper.EINVALID, "failed to parse HTML: %v", err)
	}

	exclude := map[string]bool{
		docscraper.NormalizeURL(pageURL):         true,
		docscraper.NormalizeURL(scope.BaseURL()): true,
	}

	for _, candidate := range e.candidates {
		container := doc.Find(candidate).First()
		if container.Length() == 0 {
			continue
		}
		links := collectLinks(container, base, scope, exclude, "nav")
		if len(links) > 0 {
			return links, nil
		}
	}

	// No navigation container produced usable links; scan the whole page.
	return collectLinks(doc.Selection, base, scope, exclude, "page"), nil
}

// collectLinks walks every anchor under root in document order and returns
// the in-scope, deduplicated links.
func collectLinks(root *goquery.Selection, base *url.URL, scope *docscraper.Scope, exclude map[string]bool, source string) []docscraper.DiscoveredLink {
	seen := make(map[string]bool)
	var links []docscraper.DiscoveredLink

	root.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || !isNavigational(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref).String()

		if !scope.Contains(resolved) {
			return
		}

		normalized := docscraper.NormalizeURL(resolved)
		if seen[normalized] || exclude[normalized] {
			return
		}
		seen[normalized] = true

		links = append(links, docscraper.DiscoveredLink{
			URL:    normalized,
			Text:   strings.TrimSpace(sel.Text()),
			Source: source,
		})
	})

	return links
}

// isNavigational reports whether an href could lead to another page.
// Fragment-only, mailto:, javascript: and empty hrefs cannot.
func isNavigational(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") {
		return false
	}
	lower := strings.ToLower(href)
	return !strings.HasPrefix(lower, "mailto:") && !strings.HasPrefix(lower, "javascript:")
}

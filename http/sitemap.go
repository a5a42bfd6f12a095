package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 5

// Ensure SitemapSource implements docscraper.URLSource at compile time.
var _ docscraper.URLSource = (*SitemapSource)(nil)

// SitemapSource discovers lesson URLs from a site's sitemap. It checks
// robots.txt for sitemap directives first, then falls back to
// /sitemap.xml, resolving sitemap indexes recursively.
type SitemapSource struct {
	client    *http.Client
	userAgent string
}

// NewSitemapSource creates a new SitemapSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client, userAgent: DefaultUserAgent}
}

// Discover returns in-scope URLs from the site's sitemaps, normalized and
// deduplicated in source order. A site without a usable sitemap yields an
// empty result, not an error, so callers can fall back to link extraction.
func (s *SitemapSource) Discover(ctx context.Context, scope *docscraper.Scope) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := scope.Scheme + "://" + scope.Host

	sitemapURLs := s.sitemapsFromRobots(ctx, root+"/robots.txt")
	if len(sitemapURLs) == 0 {
		sitemapURLs = []string{root + "/sitemap.xml"}
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var urls []string

	var walk func(sitemapURL string, depth int) error
	walk = func(sitemapURL string, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if depth > maxSitemapDepth || seenSitemaps[sitemapURL] {
			return nil
		}
		seenSitemaps[sitemapURL] = true

		body, err := s.get(ctx, sitemapURL)
		if err != nil {
			// A missing or unreadable sitemap is not fatal.
			return nil
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromString(body); err != nil {
			return nil
		}
		rootEl := doc.Root()
		if rootEl == nil {
			return nil
		}

		switch rootEl.Tag {
		case "sitemapindex":
			for _, sm := range rootEl.SelectElements("sitemap") {
				if loc := sm.SelectElement("loc"); loc != nil {
					if err := walk(strings.TrimSpace(loc.Text()), depth+1); err != nil {
						return err
					}
				}
			}
		case "urlset":
			for _, u := range rootEl.SelectElements("url") {
				loc := u.SelectElement("loc")
				if loc == nil {
					continue
				}
				raw := strings.TrimSpace(loc.Text())
				if !scope.Contains(raw) {
					continue
				}
				normalized := docscraper.NormalizeURL(raw)
				if seenURLs[normalized] {
					continue
				}
				seenURLs[normalized] = true
				urls = append(urls, normalized)
			}
		}
		return nil
	}

	for _, sitemapURL := range sitemapURLs {
		if err := walk(sitemapURL, 0); err != nil {
			return nil, err
		}
	}

	return urls, nil
}

// sitemapsFromRobots parses Sitemap directives out of robots.txt.
// Any failure yields an empty list and the /sitemap.xml fallback.
func (s *SitemapSource) sitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil
	}

	var sitemaps []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < len("sitemap:") || !strings.EqualFold(line[:len("sitemap:")], "sitemap:") {
			continue
		}
		if sm := strings.TrimSpace(line[len("sitemap:"):]); sm != "" {
			sitemaps = append(sitemaps, sm)
		}
	}
	return sitemaps
}

func (s *SitemapSource) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", docscraper.Errorf(docscraper.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

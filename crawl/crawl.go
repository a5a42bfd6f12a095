// Package crawl orchestrates the scrape pipeline: scope derivation, lesson
// link discovery, fetching, content extraction, Markdown conversion,
// title deduplication, and ordinal assignment.
package crawl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Frontier sizing for link discovery.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// maxCrawlURLs limits the number of URLs processed to prevent runaway crawls.
	maxCrawlURLs = 1000
)

// Crawler drives a single documentation crawl. Collaborators are supplied
// as interfaces; per-run state (seen titles, ordinal counter) lives inside
// Run, so one Crawler can serve independent runs.
type Crawler struct {
	Fetcher   docscraper.Fetcher
	Links     docscraper.LinkExtractor
	Extractor docscraper.Extractor
	Converter docscraper.Converter
	Writer    docscraper.LessonWriter

	// Source, when set, is consulted before fetching the entry page
	// (e.g. sitemap discovery). An empty result falls back to link
	// extraction from the entry page.
	Source docscraper.URLSource

	// Index, when set, receives a record for every written lesson.
	// Index failures are warnings, not crawl failures.
	Index docscraper.LessonIndex

	// MaxDepth controls link following. 1 (the default) crawls only the
	// links discovered on the entry page; larger values also follow
	// in-scope links found on lesson pages.
	MaxDepth int

	// Logger receives per-lesson warnings. Nil discards them.
	Logger *slog.Logger
}

// Result holds the outcome of a crawl.
type Result struct {
	Written    int // lessons converted and written
	Duplicates int // skipped because the title was already written
	Failed     int // skipped because of fetch, extraction, conversion or write failures
}

// Skipped returns the total number of lessons that were not written.
func (r *Result) Skipped() int {
	return r.Duplicates + r.Failed
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressWritten
	ProgressDuplicate
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type    ProgressType
	URL     string
	Title   string
	Ordinal int
	Total   int
	Error   error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run crawls the documentation set reachable from entryURL.
//
// Scoping or entry-page failures abort the run with an error and no
// output. Per-lesson failures and duplicate titles are counted, reported
// through the progress callback, and never abort the crawl. Ordinals are
// assigned only on successful writes, so written files are numbered
// 1..Written with no gaps.
func (c *Crawler) Run(ctx context.Context, entryURL string, progress ProgressFunc) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	scope, err := docscraper.NewScope(entryURL)
	if err != nil {
		return nil, err
	}

	maxDepth := c.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.MarkSeen(entryURL)
	frontier.MarkSeen(scope.BaseURL())

	if err := c.seed(ctx, entryURL, scope, frontier, logger); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, URL: entryURL, Total: frontier.Len()})
	}

	result := &Result{}
	seenTitles := make(map[string]bool)
	processed := 0

	for {
		url, depth, ok := frontier.Pop()
		if !ok {
			break
		}
		if processed >= maxCrawlURLs {
			break
		}
		processed++

		if err := ctx.Err(); err != nil {
			return result, err
		}

		c.processLesson(ctx, url, depth, maxDepth, scope, frontier, seenTitles, result, logger, progress)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: processed})
	}

	return result, nil
}

// seed fills the frontier with the initial lesson URLs, either from the
// URL source or by extracting links from the entry page.
func (c *Crawler) seed(ctx context.Context, entryURL string, scope *docscraper.Scope, frontier *Frontier, logger *slog.Logger) error {
	if c.Source != nil {
		urls, err := c.Source.Discover(ctx, scope)
		if err != nil {
			logger.Warn("url source discovery failed, falling back to link extraction", "err", err)
		} else if len(urls) > 0 {
			entry := docscraper.NormalizeURL(entryURL)
			for _, u := range urls {
				if docscraper.NormalizeURL(u) == entry {
					continue
				}
				frontier.Push(u, 1)
			}
			if frontier.Len() > 0 {
				return nil
			}
		}
	}

	html, err := c.Fetcher.Fetch(ctx, entryURL)
	if err != nil {
		return err
	}

	links, err := c.Links.ExtractLinks(html, entryURL, scope)
	if err != nil {
		return err
	}
	for _, link := range links {
		frontier.Push(link.URL, 1)
	}
	return nil
}

// processLesson handles one URL from the frontier: fetch, optionally
// discover deeper links, extract, dedup by title, convert, and write.
func (c *Crawler) processLesson(ctx context.Context, url string, depth, maxDepth int, scope *docscraper.Scope, frontier *Frontier, seenTitles map[string]bool, result *Result, logger *slog.Logger, progress ProgressFunc) {
	fail := func(err error) {
		result.Failed++
		logger.Warn("lesson skipped", "url", url, "err", err)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFailed, URL: url, Error: err})
		}
	}

	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		fail(err)
		return
	}

	if depth < maxDepth {
		links, err := c.Links.ExtractLinks(html, url, scope)
		if err == nil {
			for _, link := range links {
				frontier.Push(link.URL, depth+1)
			}
		}
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		fail(err)
		return
	}

	title := extracted.Title
	if title == "" {
		title = docscraper.TitleFromURL(url)
	}
	if title == "" {
		title = "Untitled"
	}

	if seenTitles[title] {
		result.Duplicates++
		logger.Info("duplicate title skipped", "url", url, "title", title)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressDuplicate, URL: url, Title: title})
		}
		return
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fail(err)
		return
	}
	if strings.TrimSpace(markdown) == "" {
		fail(docscraper.Errorf(docscraper.ENOTFOUND, "conversion produced no content for %s", url))
		return
	}

	lesson := &docscraper.Lesson{
		SourceURL:   url,
		Title:       title,
		Slug:        docscraper.Slugify(title),
		Ordinal:     result.Written + 1,
		Content:     markdown,
		ContentHash: ContentHash(markdown),
		FetchedAt:   time.Now().UTC(),
	}

	if err := c.Writer.WriteLesson(ctx, lesson); err != nil {
		fail(err)
		return
	}

	seenTitles[title] = true
	result.Written++

	if c.Index != nil {
		if err := c.Index.CreateLesson(ctx, lesson); err != nil {
			logger.Warn("lesson index update failed", "url", url, "err", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressWritten, URL: url, Title: title, Ordinal: lesson.Ordinal})
	}
}

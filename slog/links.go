package slog

import (
	"log/slog"
	"time"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Ensure LoggingLinkExtractor implements docscraper.LinkExtractor.
var _ docscraper.LinkExtractor = (*LoggingLinkExtractor)(nil)

// LoggingLinkExtractor wraps a LinkExtractor with debug logging.
type LoggingLinkExtractor struct {
	next   docscraper.LinkExtractor
	logger *slog.Logger
}

// NewLoggingLinkExtractor creates a new LoggingLinkExtractor.
func NewLoggingLinkExtractor(next docscraper.LinkExtractor, logger *slog.Logger) *LoggingLinkExtractor {
	return &LoggingLinkExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the operation.
func (e *LoggingLinkExtractor) ExtractLinks(html, pageURL string, scope *docscraper.Scope) (links []docscraper.DiscoveredLink, err error) {
	defer func(begin time.Time) {
		source := ""
		if len(links) > 0 {
			source = links[0].Source
		}
		e.logger.Info("link extraction",
			"url", pageURL,
			"count", len(links),
			"source", source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(html, pageURL, scope)
}

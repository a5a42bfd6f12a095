package slog

import (
	"context"
	"log/slog"
	"time"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Ensure LoggingURLSource implements docscraper.URLSource.
var _ docscraper.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with debug logging.
type LoggingURLSource struct {
	next   docscraper.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next docscraper.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingURLSource) Discover(ctx context.Context, scope *docscraper.Scope) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("url discovery",
			"base", scope.BaseURL(),
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, scope)
}

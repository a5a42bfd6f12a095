package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
	"github.com/josephcrawford99/custom-doc-scraper/mock"
	docslog "github.com/josephcrawford99/custom-doc-scraper/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("logs link count and source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkExtractor{
			ExtractLinksFn: func(html, pageURL string, scope *docscraper.Scope) ([]docscraper.DiscoveredLink, error) {
				return []docscraper.DiscoveredLink{
					{URL: "https://example.com/docs/setup", Source: "nav"},
					{URL: "https://example.com/docs/usage", Source: "nav"},
				}, nil
			},
		}

		scope, err := docscraper.NewScope("https://example.com/docs/intro")
		require.NoError(t, err)

		extractor := docslog.NewLoggingLinkExtractor(inner, logger)
		links, err := extractor.ExtractLinks("<html></html>", "https://example.com/docs/intro", scope)

		require.NoError(t, err)
		assert.Len(t, links, 2)
		output := buf.String()
		assert.Contains(t, output, "link extraction")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "source=nav")
	})
}

// Command scrape fetches a documentation site and writes each lesson as a
// numbered Markdown file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	docscraper "github.com/josephcrawford99/custom-doc-scraper"
	"github.com/josephcrawford99/custom-doc-scraper/crawl"
	"github.com/josephcrawford99/custom-doc-scraper/fs"
	"github.com/josephcrawford99/custom-doc-scraper/goquery"
	"github.com/josephcrawford99/custom-doc-scraper/htmltomarkdown"
	dochttp "github.com/josephcrawford99/custom-doc-scraper/http"
	"github.com/josephcrawford99/custom-doc-scraper/readability"
	docslog "github.com/josephcrawford99/custom-doc-scraper/slog"
	"github.com/josephcrawford99/custom-doc-scraper/sqlite"
	"github.com/josephcrawford99/custom-doc-scraper/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" required:"" help:"Entry URL of the documentation site"`
	Output    string        `short:"o" default:"scraped_docs" help:"Output directory for Markdown files"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Depth     int           `short:"d" default:"1" help:"Link-following depth (1 = entry page links only)"`
	Sitemap   bool          `help:"Seed lesson URLs from the site's sitemap instead of entry page links"`
	Extractor string        `default:"article" enum:"article,trafilatura,readability" help:"Content extraction strategy"`
	DB        string        `name:"db" help:"Optional SQLite file to index crawled lessons"`
	Verbose   bool          `short:"v" help:"Log every fetch and extraction to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrape"),
		kong.Description("Scrape a documentation site to numbered Markdown lesson files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire the pipeline
	var fetcher docscraper.Fetcher = dochttp.NewFetcher(dochttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	var links docscraper.LinkExtractor = goquery.NewNavLinkExtractor()

	var extractor docscraper.Extractor
	switch cli.Extractor {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = goquery.NewArticleExtractor()
	}

	var source docscraper.URLSource
	if cli.Sitemap {
		source = dochttp.NewSitemapSource(nil)
	}

	if cli.Verbose {
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
		links = docslog.NewLoggingLinkExtractor(links, logger)
		if source != nil {
			source = docslog.NewLoggingURLSource(source, logger)
		}
	}

	var index docscraper.LessonIndex
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		index = sqlite.NewLessonService(db)
	}

	crawler := &crawl.Crawler{
		Fetcher:   fetcher,
		Links:     links,
		Extractor: extractor,
		Converter: htmltomarkdown.NewConverter(),
		Writer:    fs.NewWriter(cli.Output),
		Source:    source,
		Index:     index,
		MaxDepth:  cli.Depth,
		Logger:    logger,
	}

	result, err := crawler.Run(ctx, cli.URL, progressPrinter(stdout))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%d lessons written to %s, %d skipped\n", result.Written, cli.Output, result.Skipped())
	return nil
}

// progressPrinter returns a ProgressFunc that prints per-lesson progress.
func progressPrinter(w io.Writer) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(w, "Found %d lesson links\n", event.Total)
		case crawl.ProgressWritten:
			fmt.Fprintf(w, "[%03d] %s\n", event.Ordinal, event.Title)
		case crawl.ProgressDuplicate:
			fmt.Fprintf(w, "skip (duplicate title): %s\n", event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "skip (%v): %s\n", event.Error, event.URL)
		}
	}
}

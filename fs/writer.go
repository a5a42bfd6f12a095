// Package fs writes converted lessons to Markdown files on disk.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Ensure Writer implements docscraper.LessonWriter at compile time.
var _ docscraper.LessonWriter = (*Writer)(nil)

// Writer persists lessons as ordinal-prefixed Markdown files in a single
// output directory. Each file is written to a temporary name and renamed
// into place, so a failed write never leaves a partial file behind.
type Writer struct {
	outputDir string
}

// NewWriter creates a Writer for the given output directory. The directory
// is created on the first write if absent.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Filename returns the output filename for a lesson:
// {ordinal:03d}_{slug}.md.
func Filename(lesson *docscraper.Lesson) string {
	slug := lesson.Slug
	if slug == "" {
		slug = docscraper.Slugify(lesson.Title)
	}
	return fmt.Sprintf("%03d_%s.md", lesson.Ordinal, slug)
}

// WriteLesson writes the lesson's Markdown content to disk.
func (w *Writer) WriteLesson(ctx context.Context, lesson *docscraper.Lesson) error {
	if err := lesson.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return err
	}

	finalPath := filepath.Join(w.outputDir, Filename(lesson))
	tmpPath := finalPath + ".tmp"

	if err := os.WriteFile(tmpPath, []byte(lesson.Content), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}

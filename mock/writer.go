package mock

import (
	"context"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

var _ docscraper.LessonWriter = (*LessonWriter)(nil)

// LessonWriter is a mock implementation of docscraper.LessonWriter.
type LessonWriter struct {
	WriteLessonFn func(ctx context.Context, lesson *docscraper.Lesson) error
}

func (w *LessonWriter) WriteLesson(ctx context.Context, lesson *docscraper.Lesson) error {
	return w.WriteLessonFn(ctx, lesson)
}

package mock

import (
	"context"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

var _ docscraper.LessonIndex = (*LessonIndex)(nil)

// LessonIndex is a mock implementation of docscraper.LessonIndex.
type LessonIndex struct {
	CreateLessonFn func(ctx context.Context, lesson *docscraper.Lesson) error
	FindLessonsFn  func(ctx context.Context, filter docscraper.LessonFilter) ([]*docscraper.Lesson, error)
}

func (i *LessonIndex) CreateLesson(ctx context.Context, lesson *docscraper.Lesson) error {
	return i.CreateLessonFn(ctx, lesson)
}

func (i *LessonIndex) FindLessons(ctx context.Context, filter docscraper.LessonFilter) ([]*docscraper.Lesson, error) {
	return i.FindLessonsFn(ctx, filter)
}

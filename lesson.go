package docscraper

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Lesson represents a single documentation page that has been fetched,
// converted to Markdown, and assigned an ordinal in navigation order.
type Lesson struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Ordinal     int       `json:"ordinal"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the lesson contains invalid fields.
func (l *Lesson) Validate() error {
	if l.SourceURL == "" {
		return Errorf(EINVALID, "lesson source URL required")
	}
	if l.Title == "" {
		return Errorf(EINVALID, "lesson title required")
	}
	if l.Ordinal < 1 {
		return Errorf(EINVALID, "lesson ordinal must be positive")
	}
	return nil
}

// LessonWriter persists converted lessons.
type LessonWriter interface {
	// WriteLesson writes a single lesson. A lesson is either written in
	// full or not at all; implementations must not leave partial output.
	WriteLesson(ctx context.Context, lesson *Lesson) error
}

// LessonIndex records crawled lessons for later inspection.
type LessonIndex interface {
	// CreateLesson adds a lesson record to the index.
	CreateLesson(ctx context.Context, lesson *Lesson) error

	// FindLessons retrieves lesson records matching the filter,
	// ordered by ordinal.
	FindLessons(ctx context.Context, filter LessonFilter) ([]*Lesson, error)
}

// LessonFilter represents a filter for FindLessons.
type LessonFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses runs of non-alphanumeric
// characters into single hyphens. Titles with no usable characters slug
// to "untitled".
func Slugify(title string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

// TitleFromURL derives a human-readable title from the last path segment
// of a URL, for pages that lack a <title> element. Returns "" when the URL
// has no usable path segment.
func TitleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return ""
	}

	// Strip a file extension, if any.
	if i := strings.Index(last, "."); i > 0 {
		last = last[:i]
	}

	words := strings.FieldsFunc(last, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

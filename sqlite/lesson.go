package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	docscraper "github.com/josephcrawford99/custom-doc-scraper"
)

// Compile-time interface verification.
var _ docscraper.LessonIndex = (*LessonService)(nil)

// LessonService implements docscraper.LessonIndex using SQLite.
type LessonService struct {
	db *DB
}

// NewLessonService creates a new LessonService.
func NewLessonService(db *DB) *LessonService {
	return &LessonService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateLesson creates a new lesson record.
func (s *LessonService) CreateLesson(ctx context.Context, lesson *docscraper.Lesson) error {
	if err := lesson.Validate(); err != nil {
		return err
	}

	lesson.ID = uuid.New().String()
	if lesson.FetchedAt.IsZero() {
		lesson.FetchedAt = time.Now().UTC()
	}
	if lesson.ContentHash == "" {
		lesson.ContentHash = hashContent(lesson.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lessons (id, source_url, title, slug, ordinal, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, lesson.ID, lesson.SourceURL, lesson.Title, lesson.Slug, lesson.Ordinal,
		lesson.Content, lesson.ContentHash, lesson.FetchedAt.Format(time.RFC3339))

	return err
}

// FindLessonByID retrieves a lesson by ID.
func (s *LessonService) FindLessonByID(ctx context.Context, id string) (*docscraper.Lesson, error) {
	var lesson docscraper.Lesson
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, slug, ordinal, content, content_hash, fetched_at
		FROM lessons
		WHERE id = ?
	`, id).Scan(&lesson.ID, &lesson.SourceURL, &lesson.Title, &lesson.Slug,
		&lesson.Ordinal, &lesson.Content, &lesson.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, docscraper.Errorf(docscraper.ENOTFOUND, "lesson not found")
	}
	if err != nil {
		return nil, err
	}

	lesson.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &lesson, nil
}

// FindLessons retrieves lessons matching the filter, ordered by ordinal.
func (s *LessonService) FindLessons(ctx context.Context, filter docscraper.LessonFilter) ([]*docscraper.Lesson, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, slug, ordinal, content, content_hash, fetched_at FROM lessons WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY ordinal ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*docscraper.Lesson
	for rows.Next() {
		var lesson docscraper.Lesson
		var fetchedAt string

		if err := rows.Scan(&lesson.ID, &lesson.SourceURL, &lesson.Title, &lesson.Slug,
			&lesson.Ordinal, &lesson.Content, &lesson.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		lesson.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		lessons = append(lessons, &lesson)
	}

	return lessons, rows.Err()
}

// DeleteLesson permanently removes a lesson record.
func (s *LessonService) DeleteLesson(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lessons WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docscraper.Errorf(docscraper.ENOTFOUND, "lesson not found")
	}

	return nil
}

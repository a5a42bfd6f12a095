package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
	"github.com/josephcrawford99/custom-doc-scraper/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lesson docscraper.Lesson
		want   string
	}{
		{
			name:   "uses precomputed slug",
			lesson: docscraper.Lesson{Ordinal: 1, Title: "Setup", Slug: "setup"},
			want:   "001_setup.md",
		},
		{
			name:   "slugifies title when slug is empty",
			lesson: docscraper.Lesson{Ordinal: 12, Title: "Getting Started!"},
			want:   "012_getting-started.md",
		},
		{
			name:   "pads ordinal to three digits",
			lesson: docscraper.Lesson{Ordinal: 123, Title: "Deep", Slug: "deep"},
			want:   "123_deep.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.Filename(&tt.lesson))
		})
	}
}

func TestWriter_WriteLesson(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown to ordinal-prefixed file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)

		lesson := &docscraper.Lesson{
			SourceURL: "https://example.com/docs/setup",
			Title:     "Setup",
			Slug:      "setup",
			Ordinal:   1,
			Content:   "# Setup\n\nInstall the thing.\n",
		}
		require.NoError(t, writer.WriteLesson(context.Background(), lesson))

		data, err := os.ReadFile(filepath.Join(dir, "001_setup.md"))
		require.NoError(t, err)
		assert.Equal(t, lesson.Content, string(data))
	})

	t.Run("creates the output directory when absent", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "output")
		writer := fs.NewWriter(dir)

		lesson := &docscraper.Lesson{
			SourceURL: "https://example.com/docs/setup",
			Title:     "Setup",
			Slug:      "setup",
			Ordinal:   1,
			Content:   "content",
		}
		require.NoError(t, writer.WriteLesson(context.Background(), lesson))

		_, err := os.Stat(filepath.Join(dir, "001_setup.md"))
		require.NoError(t, err)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)

		lesson := &docscraper.Lesson{
			SourceURL: "https://example.com/docs/setup",
			Title:     "Setup",
			Slug:      "setup",
			Ordinal:   1,
			Content:   "content",
		}
		require.NoError(t, writer.WriteLesson(context.Background(), lesson))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "001_setup.md", entries[0].Name())
	})

	t.Run("rejects invalid lessons", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter(t.TempDir())

		err := writer.WriteLesson(context.Background(), &docscraper.Lesson{Title: "No URL", Ordinal: 1})
		require.Error(t, err)
		assert.Equal(t, docscraper.EINVALID, docscraper.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter(t.TempDir())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		lesson := &docscraper.Lesson{
			SourceURL: "https://example.com/docs/setup",
			Title:     "Setup",
			Slug:      "setup",
			Ordinal:   1,
			Content:   "content",
		}
		require.Error(t, writer.WriteLesson(ctx, lesson))
	})
}

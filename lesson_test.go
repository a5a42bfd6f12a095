package docscraper_test

import (
	"testing"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLesson_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid lesson", func(t *testing.T) {
		t.Parallel()

		lesson := &docscraper.Lesson{
			SourceURL: "https://example.com/docs/setup",
			Title:     "Setup",
			Ordinal:   1,
		}
		require.NoError(t, lesson.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()

		lesson := &docscraper.Lesson{Title: "Setup", Ordinal: 1}
		err := lesson.Validate()
		require.Error(t, err)
		assert.Equal(t, docscraper.EINVALID, docscraper.ErrorCode(err))
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		lesson := &docscraper.Lesson{SourceURL: "https://example.com/docs/setup", Ordinal: 1}
		err := lesson.Validate()
		require.Error(t, err)
		assert.Equal(t, docscraper.EINVALID, docscraper.ErrorCode(err))
	})

	t.Run("zero ordinal", func(t *testing.T) {
		t.Parallel()

		lesson := &docscraper.Lesson{SourceURL: "https://example.com/docs/setup", Title: "Setup"}
		err := lesson.Validate()
		require.Error(t, err)
		assert.Equal(t, docscraper.EINVALID, docscraper.ErrorCode(err))
	})
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Setup", want: "setup"},
		{name: "spaces become hyphens", title: "Getting Started", want: "getting-started"},
		{name: "punctuation runs collapse", title: "What's New? (2024)", want: "what-s-new-2024"},
		{name: "leading and trailing runs trimmed", title: "  Hello!  ", want: "hello"},
		{name: "digits preserved", title: "Step 2 of 3", want: "step-2-of-3"},
		{name: "nothing usable", title: "???", want: "untitled"},
		{name: "empty", title: "", want: "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docscraper.Slugify(tt.title))
		})
	}
}

func TestTitleFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "hyphenated segment", url: "https://example.com/docs/getting-started", want: "Getting Started"},
		{name: "underscored segment", url: "https://example.com/docs/api_reference", want: "Api Reference"},
		{name: "html extension stripped", url: "https://example.com/docs/intro.html", want: "Intro"},
		{name: "trailing slash uses last segment", url: "https://example.com/docs/setup/", want: "Setup"},
		{name: "root path yields nothing", url: "https://example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docscraper.TitleFromURL(tt.url))
		})
	}
}

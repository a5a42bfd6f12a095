package crawl_test

import (
	"fmt"
	"testing"

	"github.com/josephcrawford99/custom-doc-scraper/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops URLs in push order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		require.True(t, f.Push("https://example.com/docs/a", 1))
		require.True(t, f.Push("https://example.com/docs/b", 1))
		require.True(t, f.Push("https://example.com/docs/c", 2))

		url, depth, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/a", url)
		assert.Equal(t, 1, depth)

		url, _, ok = f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/b", url)

		url, depth, ok = f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/c", url)
		assert.Equal(t, 2, depth)

		_, _, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("rejects URLs already pushed", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		assert.True(t, f.Push("https://example.com/docs/a", 1))
		assert.False(t, f.Push("https://example.com/docs/a", 1))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("treats fragment and trailing slash variants as the same URL", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		assert.True(t, f.Push("https://example.com/docs/a", 1))
		assert.False(t, f.Push("https://example.com/docs/a/", 1))
		assert.False(t, f.Push("https://example.com/docs/a#section", 1))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("marked URLs are never pushed", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.MarkSeen("https://example.com/docs/intro")
		assert.False(t, f.Push("https://example.com/docs/intro", 1))
		assert.Zero(t, f.Len())
	})

	t.Run("handles a large number of distinct URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(10000, 0.01)
		for i := 0; i < 500; i++ {
			require.True(t, f.Push(fmt.Sprintf("https://example.com/docs/page-%d", i), 1))
		}
		assert.Equal(t, 500, f.Len())
	})
}

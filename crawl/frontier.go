package crawl

import (
	"sync"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
	"github.com/josephcrawford99/custom-doc-scraper/bloom"
)

// Frontier is an in-memory FIFO crawl queue with Bloom filter
// deduplication. Pop order matches Push order, which keeps ordinal
// assignment aligned with navigation order. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []frontierItem
}

type frontierItem struct {
	url   string
	depth int
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// MarkSeen records a URL as already processed without queueing it.
// Used to keep the entry page out of the crawl.
func (f *Frontier) MarkSeen(rawURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen.Add(docscraper.NormalizeURL(rawURL))
}

// Push queues a URL at the given depth.
// Returns false if the URL has already been seen.
func (f *Frontier) Push(rawURL string, depth int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := docscraper.NormalizeURL(rawURL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)
	f.queue = append(f.queue, frontierItem{url: url, depth: depth})
	return true
}

// Pop returns the next URL and its depth in FIFO order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", 0, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item.url, item.depth, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL has been queued or processed.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(docscraper.NormalizeURL(rawURL))
}

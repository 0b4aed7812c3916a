package crawl

import (
	"container/heap"
	"sync"

	"github.com/pawhq/paw"
	"github.com/pawhq/paw/bloom"
)

// Compile-time interface verification.
var _ paw.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier with Bloom filter deduplication.
// Links are popped in breadth-first order: strictly by depth, then by
// priority within a depth level, then by insertion order.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
	seq   int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen. Fragments are stripped
// before deduplication, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(link paw.Link) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := bloom.Normalize(link.URL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	link.URL = url
	heap.Push(f.queue, queued{link: link, seq: f.seq})
	f.seq++
	return true
}

// Pop returns the next link in breadth-first order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (paw.Link, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return paw.Link{}, false
	}
	q, _ := heap.Pop(f.queue).(queued)
	return q.link, true
}

// Len returns the number of links in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued.
// Fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(rawURL)
}

// queued pairs a link with its insertion sequence for stable ordering.
type queued struct {
	link paw.Link
	seq  int
}

// linkHeap implements heap.Interface ordered by (depth asc, priority desc,
// seq asc).
type linkHeap []queued

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	if h[i].link.Depth != h[j].link.Depth {
		return h[i].link.Depth < h[j].link.Depth
	}
	if h[i].link.Priority != h[j].link.Priority {
		return h[i].link.Priority > h[j].link.Priority
	}
	return h[i].seq < h[j].seq
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	q, _ := x.(queued)
	*h = append(*h, q)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

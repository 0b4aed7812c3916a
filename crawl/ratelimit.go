package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/pawhq/paw"
	"golang.org/x/time/rate"
)

var _ paw.DomainLimiter = (*DelayLimiter)(nil)

// DelayLimiter enforces a fixed delay between requests to the same domain
// using per-domain token buckets. Requests to different domains are not
// held up by each other.
type DelayLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewDelayLimiter creates a DelayLimiter with the given inter-request
// delay. Non-positive delays fall back to paw.DefaultDelay.
// Each domain gets its own limiter with a burst of 1 (no bursting).
func NewDelayLimiter(delay time.Duration) *DelayLimiter {
	if delay <= 0 {
		delay = paw.DefaultDelay
	}
	return &DelayLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: delay,
	}
}

// Wait blocks until the delay allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DelayLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(d.interval), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Guard is an in-memory per-client request limiter. Each key owns a token
// bucket sized for the per-minute ceiling: the full ceiling is available as
// burst and refills continuously over the window. Idle keys are evicted so
// memory is bounded by active clients, not historical ones.
type Guard struct {
	mu      sync.Mutex
	entries map[string]*entry

	limit        rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewGuard creates a guard admitting perMinute requests per key per rolling
// minute.
func NewGuard(perMinute int) *Guard {
	return &Guard{
		entries:      make(map[string]*entry),
		limit:        rate.Limit(float64(perMinute) / 60.0),
		burst:        perMinute,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
	}
}

// Allow records a request for key. When the ceiling is hit it reports the
// duration until the next request would be admitted.
func (g *Guard) Allow(key string) (bool, time.Duration) {
	lim := g.limiter(key)

	r := lim.Reserve()
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay
	}
	return true, 0
}

func (g *Guard) limiter(key string) *rate.Limiter {
	now := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if ent, ok := g.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(g.limit, g.burst)
	g.entries[key] = &entry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup drops counters for keys that have been idle longer than the TTL.
func (g *Guard) Cleanup() {
	cutoff := time.Now().Add(-g.idleTTL)

	g.mu.Lock()
	defer g.mu.Unlock()

	for k, ent := range g.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(g.entries, k)
		}
	}
}

// StartJanitor starts a goroutine that evicts idle keys periodically.
// It stops when ctx is cancelled.
func (g *Guard) StartJanitor(ctx context.Context) {
	t := time.NewTicker(g.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				g.Cleanup()
			}
		}
	}()
}

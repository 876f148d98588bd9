package sweeper

import (
	"context"
	"log"
	"time"

	"github.com/maxroyer/qrlink/pkg/qrlink/links"
)

// Sweeper periodically removes expired links. It shares the store with
// request traffic without any exclusive locking; the sweep only touches
// rows that are already logically dead.
type Sweeper struct {
	service  *links.Service
	interval time.Duration
}

func New(service *links.Service, interval time.Duration) *Sweeper {
	return &Sweeper{service: service, interval: interval}
}

// Run executes the sweep loop until ctx is cancelled. A zero or negative
// interval disables sweeping entirely.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		log.Println("Expiry sweep disabled")
		return
	}

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			removed, err := s.service.Sweep(now.UTC())
			if err != nil {
				// The store is left in its prior state; the next tick retries.
				log.Printf("Expiry sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("Expiry sweep removed %d expired links", removed)
			}
		}
	}
}

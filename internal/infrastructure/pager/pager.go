// Package pager serves pages of the in-memory collection after a simulated delay.
package pager

import (
	"context"
	"time"

	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
)

// DefaultDelay matches the latency of the hosted gallery's page load.
const DefaultDelay = 500 * time.Millisecond

// Delayed slices the filtered collection after waiting Delay.
type Delayed struct {
	Items []showcase.Item
	Delay time.Duration
}

var _ usecase.PageFetcher = (*Delayed)(nil)

// NewDelayed constructs a Delayed fetcher over items.
func NewDelayed(items []showcase.Item, delay time.Duration) *Delayed {
	return new(Delayed{Items: items, Delay: delay})
}

// FetchPage waits for the configured delay, then returns filtered[offset:offset+limit].
// It returns ctx.Err() when the context ends first.
func (d *Delayed) FetchPage(ctx context.Context, req usecase.PageRequest) ([]showcase.Item, error) {
	if d.Delay > 0 {
		timer := time.NewTimer(d.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := showcase.Filter(d.Items, req.Kind, req.Category)
	if req.Offset < 0 || req.Offset >= len(view) || req.Limit <= 0 {
		return nil, nil
	}
	end := min(req.Offset+req.Limit, len(view))
	return append([]showcase.Item(nil), view[req.Offset:end]...), nil
}

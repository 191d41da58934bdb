// Package usecase contains application-level services.
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/tesso57/atelie/internal/domain/showcase"

	log "github.com/sirupsen/logrus"
)

// DefaultPageSize is the number of items appended per page load.
const DefaultPageSize = 6

// PageRequest describes one page of the filtered view.
type PageRequest struct {
	Generation uint64
	Kind       showcase.Kind
	Category   showcase.Category
	Page       int
	Offset     int
	Limit      int
}

// PageFetcher abstracts loading a page of the filtered view. Implementations may block;
// callers run them off the UI loop.
type PageFetcher interface {
	FetchPage(ctx context.Context, req PageRequest) ([]showcase.Item, error)
}

// PageFetcherFunc adapts a function to PageFetcher.
type PageFetcherFunc func(ctx context.Context, req PageRequest) ([]showcase.Item, error)

// FetchPage implements PageFetcher.
func (f PageFetcherFunc) FetchPage(ctx context.Context, req PageRequest) ([]showcase.Item, error) {
	return f(ctx, req)
}

// Phase is the pagination state for the current filter selection.
type Phase int

const (
	Idle Phase = iota
	Loading
	Exhausted
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Exhausted:
		return "exhausted"
	default:
		return "idle"
	}
}

// FeedState is a read-only snapshot of the feed.
type FeedState struct {
	Kind     showcase.Kind
	Category showcase.Category
	Page     int
	Items    []showcase.Item
	Loading  bool
	HasMore  bool
	Total    int
	Phase    Phase
	Err      error
}

// FeedOption configures a FeedManager.
type FeedOption func(*FeedManager)

// WithPageSize overrides DefaultPageSize. Non-positive sizes are ignored.
func WithPageSize(n int) FeedOption {
	return func(m *FeedManager) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

// WithFilter sets the initial kind and category.
func WithFilter(kind showcase.Kind, category showcase.Category) FeedOption {
	return func(m *FeedManager) {
		m.kind = kind
		m.category = category
	}
}

// FeedManager owns the paginated, filterable feed for one display mode and one category.
// All state changes go through its methods.
type FeedManager struct {
	mu sync.Mutex

	fetcher  PageFetcher
	items    []showcase.Item
	pageSize int

	kind     showcase.Kind
	category showcase.Category
	filtered []showcase.Item

	displayed  []showcase.Item
	page       int
	loading    bool
	hasMore    bool
	generation uint64
	lastErr    error

	liked *showcase.LikedSet
}

// NewFeedManager constructs a FeedManager showing the first page of all apps.
func NewFeedManager(items []showcase.Item, fetcher PageFetcher, opts ...FeedOption) *FeedManager {
	m := &FeedManager{
		fetcher:  fetcher,
		items:    items,
		pageSize: DefaultPageSize,
		kind:     showcase.KindApp,
		category: showcase.CategoryAll,
		liked:    showcase.NewLikedSet(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.resetLocked()
	return m
}

// PageSize returns the configured page size.
func (m *FeedManager) PageSize() int {
	return m.pageSize
}

// SetFilter changes kind and category and restarts the feed at page 1.
func (m *FeedManager) SetFilter(kind showcase.Kind, category showcase.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kind = kind
	m.category = category
	m.resetLocked()
}

// SetKind switches between apps and ideas, keeping the category.
func (m *FeedManager) SetKind(kind showcase.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kind = kind
	m.resetLocked()
}

// SetCategory changes the category, keeping the kind.
func (m *FeedManager) SetCategory(category showcase.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.category = category
	m.resetLocked()
}

// SetItems replaces the collection and restarts the feed.
func (m *FeedManager) SetItems(items []showcase.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	m.resetLocked()
}

func (m *FeedManager) resetLocked() {
	m.filtered = showcase.Filter(m.items, m.kind, m.category)
	first := min(m.pageSize, len(m.filtered))
	m.displayed = append([]showcase.Item(nil), m.filtered[:first]...)
	m.page = 1
	m.hasMore = len(m.filtered) > m.pageSize
	// A load still in flight belongs to the previous selection.
	m.loading = false
	m.lastErr = nil
	m.generation++

	log.WithFields(log.Fields{
		"kind":     m.kind,
		"category": m.category,
		"total":    len(m.filtered),
		"has_more": m.hasMore,
	}).Debug("Feed reset")
}

// Begin claims the next page load. It returns false without changing anything when a
// load is already in flight or the filtered view is exhausted.
func (m *FeedManager) Begin() (PageRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading || !m.hasMore {
		return PageRequest{}, false
	}
	m.loading = true
	return PageRequest{
		Generation: m.generation,
		Kind:       m.kind,
		Category:   m.category,
		Page:       m.page,
		Offset:     m.page * m.pageSize,
		Limit:      m.pageSize,
	}, true
}

// Complete lands the result of a load started by Begin. Results from an earlier filter
// selection are dropped. An empty page marks the feed as exhausted.
func (m *FeedManager) Complete(req PageRequest, items []showcase.Item, err error) error {
	_, err = m.complete(req, items, err)
	return err
}

func (m *FeedManager) complete(req PageRequest, items []showcase.Item, fetchErr error) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if req.Generation != m.generation {
		log.WithFields(log.Fields{
			"generation": req.Generation,
			"current":    m.generation,
		}).Debug("Dropping stale page")
		return false, nil
	}
	m.loading = false

	if fetchErr != nil {
		m.lastErr = fmt.Errorf("load page %d: %w", req.Page+1, fetchErr)
		return false, m.lastErr
	}
	m.lastErr = nil

	if len(items) == 0 {
		m.hasMore = false
		return false, nil
	}

	m.displayed = append(m.displayed, items...)
	m.page = req.Page + 1
	m.hasMore = req.Offset+m.pageSize < len(m.filtered)

	log.WithFields(log.Fields{
		"page":      m.page,
		"displayed": len(m.displayed),
		"has_more":  m.hasMore,
	}).Debug("Page loaded")
	return true, nil
}

// LoadNextPage loads and appends the next page and reports whether items were appended.
// A call made while loading, or after the feed is exhausted, does nothing.
func (m *FeedManager) LoadNextPage(ctx context.Context) (bool, error) {
	req, ok := m.Begin()
	if !ok {
		return false, nil
	}
	items, err := m.fetcher.FetchPage(ctx, req)
	return m.complete(req, items, err)
}

// CanLoad reports whether a near-end signal would start a load right now.
func (m *FeedManager) CanLoad() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasMore && !m.loading
}

// Watch loads pages in response to near-end signals. After every signal it keeps loading
// while nearEnd reports true and more items remain. It returns when ctx is done or
// signals is closed.
func (m *FeedManager) Watch(ctx context.Context, signals <-chan struct{}, nearEnd func() bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-signals:
			if !ok {
				return nil
			}
		}
		for nearEnd() && m.CanLoad() {
			loaded, err := m.LoadNextPage(ctx)
			if err != nil {
				log.WithError(err).Warn("Near-end load failed")
				break
			}
			if !loaded {
				break
			}
		}
	}
}

// RelatedItems resolves the related items shown in current's detail view.
func (m *FeedManager) RelatedItems(current showcase.Item) []showcase.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return showcase.Related(m.items, current, showcase.RelatedLimit)
}

// Item looks an item up in the full collection.
func (m *FeedManager) Item(id string) (showcase.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return showcase.Find(m.items, id)
}

// ToggleLike records the viewer's like state for id. It never fails.
func (m *FeedManager) ToggleLike(id string, liked bool) {
	m.mu.Lock()
	m.liked.Set(id, liked)
	m.mu.Unlock()

	action := "Unliked"
	if liked {
		action = "Liked"
	}
	log.WithField("id", id).Info(action + " item")
}

// IsLiked reports whether the viewer liked id.
func (m *FeedManager) IsLiked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liked.Has(id)
}

// Liked returns a sorted snapshot of the liked-set.
func (m *FeedManager) Liked() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liked.IDs()
}

// Snapshot returns a copy of the current feed state.
func (m *FeedManager) Snapshot() FeedState {
	m.mu.Lock()
	defer m.mu.Unlock()

	phase := Idle
	switch {
	case m.loading:
		phase = Loading
	case !m.hasMore:
		phase = Exhausted
	}
	return FeedState{
		Kind:     m.kind,
		Category: m.category,
		Page:     m.page,
		Items:    append([]showcase.Item(nil), m.displayed...),
		Loading:  m.loading,
		HasMore:  m.hasMore,
		Total:    len(m.filtered),
		Phase:    phase,
		Err:      m.lastErr,
	}
}

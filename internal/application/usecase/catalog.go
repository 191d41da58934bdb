package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/tesso57/atelie/internal/domain/showcase"

	log "github.com/sirupsen/logrus"
)

// CatalogRepository abstracts where the item collection comes from.
type CatalogRepository interface {
	Load(ctx context.Context) ([]showcase.Item, error)
}

// CatalogWriter abstracts persisting imported items.
type CatalogWriter interface {
	Upsert(ctx context.Context, items []showcase.Item) error
}

// CatalogService loads and validates the collection.
type CatalogService struct {
	Repo            CatalogRepository
	StrictPlatforms bool
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo CatalogRepository, strictPlatforms bool) CatalogService {
	return CatalogService{Repo: repo, StrictPlatforms: strictPlatforms}
}

// Load returns the published items of the collection in catalog order.
func (s CatalogService) Load(ctx context.Context) ([]showcase.Item, error) {
	items, err := s.Repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := showcase.Validate(items, s.StrictPlatforms); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	published := lo.Filter(items, func(it showcase.Item, _ int) bool { return it.IsPublished })
	if hidden := len(items) - len(published); hidden > 0 {
		log.WithField("hidden", hidden).Info("Skipping unpublished items")
	}
	return published, nil
}

// Import validates items and writes them through w.
func (s CatalogService) Import(ctx context.Context, w CatalogWriter, items []showcase.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("nothing to import")
	}
	if err := showcase.Validate(items, s.StrictPlatforms); err != nil {
		return fmt.Errorf("invalid import: %w", err)
	}
	if err := w.Upsert(ctx, items); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}
	log.WithField("count", len(items)).Info("Imported items")
	return nil
}

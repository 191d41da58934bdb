package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/atelie/internal/domain/showcase"
)

type stubCatalogRepo struct {
	mock.Mock
	items []showcase.Item
}

func (s *stubCatalogRepo) Load(ctx context.Context) ([]showcase.Item, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx)
		items, _ := args.Get(0).([]showcase.Item)
		return items, args.Error(1)
	}
	return append([]showcase.Item(nil), s.items...), nil
}

type stubCatalogWriter struct {
	mock.Mock
	written []showcase.Item
}

func (s *stubCatalogWriter) Upsert(ctx context.Context, items []showcase.Item) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, items)
		return args.Error(0)
	}
	s.written = append(s.written, items...)
	return nil
}

func publishedApp(id string) showcase.Item {
	return showcase.Item{
		ID:          id,
		Kind:        showcase.KindApp,
		Categories:  []showcase.Category{showcase.CategoryAI},
		Platforms:   []showcase.Platform{showcase.PlatformWeb},
		IsPublished: true,
	}
}

func TestCatalogLoadHidesUnpublished(t *testing.T) {
	draft := publishedApp("draft")
	draft.IsPublished = false
	repo := &stubCatalogRepo{items: []showcase.Item{publishedApp("a"), draft, publishedApp("b")}}

	items, err := NewCatalogService(repo, false).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, itemIDs(items))
}

func TestCatalogLoadRejectsDuplicates(t *testing.T) {
	repo := &stubCatalogRepo{items: []showcase.Item{publishedApp("a"), publishedApp("a")}}

	_, err := NewCatalogService(repo, false).Load(context.Background())
	require.ErrorIs(t, err, showcase.ErrDuplicateID)
}

func TestCatalogLoadStrictPlatforms(t *testing.T) {
	odd := publishedApp("a")
	odd.Platforms = []showcase.Platform{"Android"}
	repo := &stubCatalogRepo{items: []showcase.Item{odd}}

	_, err := NewCatalogService(repo, false).Load(context.Background())
	require.NoError(t, err)

	_, err = NewCatalogService(repo, true).Load(context.Background())
	require.ErrorIs(t, err, showcase.ErrUnknownPlatform)
}

func TestCatalogLoadPropagatesRepoError(t *testing.T) {
	repo := &stubCatalogRepo{}
	repo.On("Load", mock.Anything).Return(nil, errors.New("disk gone"))

	_, err := NewCatalogService(repo, false).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	repo.AssertExpectations(t)
}

func TestCatalogImport(t *testing.T) {
	svc := NewCatalogService(&stubCatalogRepo{}, false)
	w := &stubCatalogWriter{}

	require.Error(t, svc.Import(context.Background(), w, nil))

	err := svc.Import(context.Background(), w, []showcase.Item{{ID: "x", Kind: "gadget"}})
	require.ErrorIs(t, err, showcase.ErrUnknownKind)
	assert.Empty(t, w.written)

	require.NoError(t, svc.Import(context.Background(), w, []showcase.Item{publishedApp("a")}))
	assert.Equal(t, []string{"a"}, itemIDs(w.written))
}

func TestCatalogImportWriterError(t *testing.T) {
	w := &stubCatalogWriter{}
	w.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("locked"))

	err := NewCatalogService(&stubCatalogRepo{}, false).Import(context.Background(), w, []showcase.Item{publishedApp("a")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import catalog")
	w.AssertExpectations(t)
}

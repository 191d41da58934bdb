// Package catalogdb stores the catalog in SQLite and pages through it with SQL.
package catalogdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id                 TEXT PRIMARY KEY,
	position           INTEGER NOT NULL,
	kind               TEXT NOT NULL,
	name               TEXT NOT NULL DEFAULT '',
	developer_name     TEXT NOT NULL DEFAULT '',
	description        TEXT NOT NULL DEFAULT '',
	categories         TEXT NOT NULL DEFAULT '[]',
	platforms          TEXT NOT NULL DEFAULT '[]',
	target_audience    TEXT NOT NULL DEFAULT '',
	scale_info         TEXT NOT NULL DEFAULT '',
	hero_image_url     TEXT NOT NULL DEFAULT '',
	gallery_image_urls TEXT NOT NULL DEFAULT '[]',
	app_link           TEXT NOT NULL DEFAULT '',
	is_published       INTEGER NOT NULL DEFAULT 0,
	is_featured        INTEGER NOT NULL DEFAULT 0,
	view_count         INTEGER NOT NULL DEFAULT 0,
	like_count         INTEGER NOT NULL DEFAULT 0,
	interest_count     INTEGER NOT NULL DEFAULT 0,
	created_at         TEXT NOT NULL DEFAULT '',
	updated_at         TEXT NOT NULL DEFAULT '',
	problem            TEXT NOT NULL DEFAULT '',
	solution           TEXT NOT NULL DEFAULT '',
	accolades          TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS items_kind_position ON items (kind, position);
CREATE TABLE IF NOT EXISTS item_categories (
	item_id  TEXT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
	category TEXT NOT NULL,
	PRIMARY KEY (item_id, category)
);
CREATE INDEX IF NOT EXISTS item_categories_category ON item_categories (category);
`

var columns = []string{
	"id", "kind", "name", "developer_name", "description", "categories", "platforms",
	"target_audience", "scale_info", "hero_image_url", "gallery_image_urls", "app_link",
	"is_published", "is_featured", "view_count", "like_count", "interest_count",
	"created_at", "updated_at", "problem", "solution", "accolades",
}

var flavor = sqlbuilder.SQLite

// Store is a SQLite-backed catalog. The database is opened on first use.
type Store struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

var (
	_ usecase.CatalogRepository = (*Store)(nil)
	_ usecase.CatalogWriter     = (*Store)(nil)
	_ usecase.PageFetcher       = (*Store)(nil)
)

// NewStore creates a store for the database at path.
func NewStore(path string) *Store {
	return new(Store{path: path})
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", s.path))
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	s.db = db
	return db, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Load returns every stored item in catalog order, published or not.
func (s *Store) Load(ctx context.Context) ([]showcase.Item, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	sb := flavor.NewSelectBuilder()
	sb.Select(columns...).From("items").OrderBy("position").Asc()
	query, args := sb.BuildWithFlavor(flavor)
	return queryItems(ctx, db, query, args)
}

// FetchPage returns one page of published items matching the request's kind and category.
func (s *Store) FetchPage(ctx context.Context, req usecase.PageRequest) ([]showcase.Item, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	query, args := pageQuery(req)
	log.WithFields(log.Fields{
		"kind":     req.Kind,
		"category": req.Category,
		"offset":   req.Offset,
		"limit":    req.Limit,
	}).Debug("Fetching page from catalog db")
	return queryItems(ctx, db, query, args)
}

func pageQuery(req usecase.PageRequest) (string, []any) {
	sb := flavor.NewSelectBuilder()
	sb.Select(columns...).From("items")
	sb.Where(
		sb.Equal("kind", string(req.Kind)),
		sb.Equal("is_published", 1),
	)
	if req.Category != "" && req.Category != showcase.CategoryAll {
		sub := flavor.NewSelectBuilder()
		sub.Select("item_id").From("item_categories").Where(sub.Equal("category", string(req.Category)))
		sb.Where(sb.In("id", sub))
	}
	sb.OrderBy("position").Asc()
	sb.Limit(req.Limit).Offset(req.Offset)
	return sb.BuildWithFlavor(flavor)
}

// Upsert inserts new items after the existing ones and updates known items in place,
// keeping their position.
func (s *Store) Upsert(ctx context.Context, items []showcase.Item) error {
	if len(items) == 0 {
		return nil
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), -1) + 1 FROM items").Scan(&next); err != nil {
		return fmt.Errorf("read next position: %w", err)
	}

	for i, it := range items {
		row, err := encodeRow(it)
		if err != nil {
			return fmt.Errorf("encode %s: %w", it.ID, err)
		}
		query, args := upsertQuery(row, next+i)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert %s: %w", it.ID, err)
		}
		if err := replaceCategories(ctx, tx, it); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.WithField("count", len(items)).Debug("Upserted catalog items")
	return nil
}

func upsertQuery(row []any, position int) (string, []any) {
	ib := flavor.NewInsertBuilder()
	ib.InsertInto("items").Cols(append([]string{"position"}, columns...)...)
	ib.Values(append([]any{position}, row...)...)

	update := "ON CONFLICT(id) DO UPDATE SET "
	for i, col := range columns[1:] {
		if i > 0 {
			update += ", "
		}
		update += col + " = excluded." + col
	}
	ib.SQL(update)
	return ib.BuildWithFlavor(flavor)
}

func replaceCategories(ctx context.Context, tx *sql.Tx, it showcase.Item) error {
	del := flavor.NewDeleteBuilder()
	del.DeleteFrom("item_categories").Where(del.Equal("item_id", it.ID))
	query, args := del.BuildWithFlavor(flavor)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear categories of %s: %w", it.ID, err)
	}
	if len(it.Categories) == 0 {
		return nil
	}

	query, args = categoriesQuery(it)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write categories of %s: %w", it.ID, err)
	}
	return nil
}

func categoriesQuery(it showcase.Item) (string, []any) {
	ib := flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("item_categories").Cols("item_id", "category")
	for _, c := range it.Categories {
		ib.Values(it.ID, string(c))
	}
	return ib.BuildWithFlavor(flavor)
}

func encodeRow(it showcase.Item) ([]any, error) {
	categories, err := json.Marshal(nonNil(it.Categories))
	if err != nil {
		return nil, err
	}
	platforms, err := json.Marshal(nonNil(it.Platforms))
	if err != nil {
		return nil, err
	}
	gallery, err := json.Marshal(nonNil(it.GalleryImageURLs))
	if err != nil {
		return nil, err
	}
	accolades, err := json.Marshal(nonNil(it.Accolades))
	if err != nil {
		return nil, err
	}
	return []any{
		it.ID, string(it.Kind), it.Name, it.DeveloperName, it.Description,
		string(categories), string(platforms),
		it.TargetAudience, it.ScaleInfo, it.HeroImageURL, string(gallery), it.AppLink,
		it.IsPublished, it.IsFeatured, it.ViewCount, it.LikeCount, it.InterestCount,
		formatTime(it.CreatedAt), formatTime(it.UpdatedAt),
		it.Problem, it.Solution, string(accolades),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func queryItems(ctx context.Context, db *sql.DB, query string, args []any) ([]showcase.Item, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []showcase.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanItem(rows *sql.Rows) (showcase.Item, error) {
	var (
		it                                       showcase.Item
		kind, categories, platforms              string
		gallery, accolades, createdAt, updatedAt string
	)
	err := rows.Scan(
		&it.ID, &kind, &it.Name, &it.DeveloperName, &it.Description,
		&categories, &platforms,
		&it.TargetAudience, &it.ScaleInfo, &it.HeroImageURL, &gallery, &it.AppLink,
		&it.IsPublished, &it.IsFeatured, &it.ViewCount, &it.LikeCount, &it.InterestCount,
		&createdAt, &updatedAt,
		&it.Problem, &it.Solution, &accolades,
	)
	if err != nil {
		return it, err
	}
	it.Kind = showcase.Kind(kind)
	if err := decodeList(categories, &it.Categories); err != nil {
		return it, err
	}
	if err := decodeList(platforms, &it.Platforms); err != nil {
		return it, err
	}
	if err := decodeList(gallery, &it.GalleryImageURLs); err != nil {
		return it, err
	}
	if err := decodeList(accolades, &it.Accolades); err != nil {
		return it, err
	}
	it.CreatedAt = parseTime(createdAt)
	it.UpdatedAt = parseTime(updatedAt)
	return it, nil
}

// decodeList leaves dst nil for an empty list so rows read back like the source items.
func decodeList[T any](raw string, dst *[]T) error {
	if raw == "" || raw == "[]" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

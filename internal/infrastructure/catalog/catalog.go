// Package catalog reads the item collection from YAML.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seed []byte

var encodeCatalog = Encode

type document struct {
	Items []showcase.Item `yaml:"items"`
}

// Decode reads a catalog document.
func Decode(r io.Reader) ([]showcase.Item, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Items, nil
}

// Encode writes items as a catalog document.
func Encode(w io.Writer, items []showcase.Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Items: items}); err != nil {
		return err
	}
	return enc.Close()
}

// Seed returns the built-in collection.
func Seed() ([]showcase.Item, error) {
	items, err := Decode(bytes.NewReader(seed))
	if err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	return items, nil
}

// Embedded serves the built-in collection.
type Embedded struct{}

var _ usecase.CatalogRepository = Embedded{}

// Load implements usecase.CatalogRepository.
func (Embedded) Load(context.Context) ([]showcase.Item, error) {
	return Seed()
}

// File serves a collection from a YAML file.
type File struct {
	Path string
}

var (
	_ usecase.CatalogRepository = File{}
	_ usecase.CatalogWriter     = File{}
)

// Load implements usecase.CatalogRepository.
func (f File) Load(context.Context) ([]showcase.Item, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	items, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	return items, nil
}

// Upsert merges items into the file. Known ids are replaced in place, new ids are
// appended in the given order.
func (f File) Upsert(ctx context.Context, items []showcase.Item) error {
	existing, err := f.Load(ctx)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	index := make(map[string]int, len(existing))
	for i, it := range existing {
		index[it.ID] = i
	}
	for _, it := range items {
		if i, ok := index[it.ID]; ok {
			existing[i] = it
			continue
		}
		index[it.ID] = len(existing)
		existing = append(existing, it)
	}

	return f.write(existing)
}

// write replaces the file through a temp file in the same directory, so a failed
// encode leaves the previous catalog intact.
func (f File) write(items []showcase.Item) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := encodeCatalog(tmp, items); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// Package feedimport turns RSS, Atom and JSON feeds into catalog items.
package feedimport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
	"github.com/tesso57/atelie/internal/domain/showcase"

	log "github.com/sirupsen/logrus"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, source string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	if !isURL(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return fp.Parse(f)
	}
	fp.UserAgent = "Atelie/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(source, ctx)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Options controls how feed entries become items.
type Options struct {
	Kind     showcase.Kind
	Platform showcase.Platform
	// Category is used for entries whose own categories are all outside the vocabulary.
	Category showcase.Category
}

// Import parses source, a feed URL or file path, and maps every entry to an item.
func Import(ctx context.Context, source string, opt Options) ([]showcase.Item, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New("feed source is empty")
	}
	if opt.Kind == "" {
		opt.Kind = showcase.KindApp
	}
	parsed, err := ParserFunc(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", source, err)
	}

	items := make([]showcase.Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		it, ok := toItem(parsed, entry, opt)
		if !ok {
			log.WithField("title", entry.Title).Warn("Skipping feed entry without id or link")
			continue
		}
		items = append(items, it)
	}
	items = lo.UniqBy(items, func(it showcase.Item) string { return it.ID })

	log.WithFields(log.Fields{
		"source": source,
		"items":  len(items),
	}).Info("Imported feed")
	return items, nil
}

func toItem(feed *gofeed.Feed, entry *gofeed.Item, opt Options) (showcase.Item, bool) {
	id := strings.TrimSpace(entry.GUID)
	if id == "" {
		id = strings.TrimSpace(entry.Link)
	}
	if id == "" {
		return showcase.Item{}, false
	}

	it := showcase.Item{
		ID:            id,
		Kind:          opt.Kind,
		Name:          strings.TrimSpace(entry.Title),
		DeveloperName: developer(feed, entry),
		Description:   strings.TrimSpace(entry.Description),
		Categories:    categories(entry.Categories, opt.Category),
		IsPublished:   true,
	}
	if opt.Platform != "" {
		it.Platforms = []showcase.Platform{opt.Platform}
	}
	if opt.Kind == showcase.KindApp {
		it.AppLink = entry.Link
	}
	if entry.Image != nil {
		it.HeroImageURL = entry.Image.URL
	} else if feed.Image != nil {
		it.HeroImageURL = feed.Image.URL
	}
	it.CreatedAt = firstTime(entry.PublishedParsed, entry.UpdatedParsed)
	it.UpdatedAt = firstTime(entry.UpdatedParsed, entry.PublishedParsed)
	return it, true
}

func developer(feed *gofeed.Feed, entry *gofeed.Item) string {
	for _, p := range append(entry.Authors, feed.Authors...) {
		if p != nil && strings.TrimSpace(p.Name) != "" {
			return strings.TrimSpace(p.Name)
		}
	}
	return feed.Title
}

// categories keeps the vocabulary terms in feed order, dropping unknown and repeated ones.
func categories(raw []string, fallback showcase.Category) []showcase.Category {
	var out []showcase.Category
	for _, r := range raw {
		c, err := showcase.ParseCategory(r)
		if err != nil || c == showcase.CategoryAll {
			continue
		}
		out = append(out, c)
	}
	out = lo.Uniq(out)
	if len(out) == 0 && fallback != "" && fallback != showcase.CategoryAll {
		return []showcase.Category{fallback}
	}
	return out
}

func firstTime(candidates ...*time.Time) time.Time {
	for _, t := range candidates {
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}

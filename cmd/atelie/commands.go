package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/tesso57/atelie/internal/application/settings"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
	"github.com/tesso57/atelie/internal/infrastructure/catalog"
	"github.com/tesso57/atelie/internal/infrastructure/catalogdb"
	"github.com/tesso57/atelie/internal/infrastructure/config"
	"github.com/tesso57/atelie/internal/infrastructure/feedimport"
	"github.com/tesso57/atelie/internal/infrastructure/logging"
	"github.com/tesso57/atelie/internal/infrastructure/pager"
	"github.com/tesso57/atelie/internal/presentation/tui"
)

// Globals is shared by every command.
type Globals struct {
	ConfigPath string
	// Out receives command output. Nil means stdout.
	Out io.Writer
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// gallery is the catalog wiring chosen by the configuration.
type gallery struct {
	cfg     settings.Settings
	store   *config.Store
	service usecase.CatalogService
	writer  usecase.CatalogWriter
	db      *catalogdb.Store
}

func openGallery(g *Globals) (*gallery, error) {
	store, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return newGallery(store), nil
}

func newGallery(store *config.Store) *gallery {
	cfg := store.Settings
	gal := &gallery{cfg: cfg, store: store}

	switch {
	case cfg.UsesDatabase():
		gal.db = catalogdb.NewStore(cfg.Database)
		gal.service = usecase.NewCatalogService(gal.db, cfg.StrictPlatforms)
		gal.writer = gal.db
	case cfg.CatalogFile != "":
		file := catalog.File{Path: cfg.CatalogFile}
		gal.service = usecase.NewCatalogService(file, cfg.StrictPlatforms)
		gal.writer = file
	default:
		gal.service = usecase.NewCatalogService(catalog.Embedded{}, cfg.StrictPlatforms)
	}
	return gal
}

func (gal *gallery) Close() error {
	if gal.db == nil {
		return nil
	}
	return gal.db.Close()
}

// items loads the published collection. An empty database is seeded first.
func (gal *gallery) items(ctx context.Context) ([]showcase.Item, error) {
	items, err := gal.service.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 || gal.db == nil {
		return items, nil
	}

	seed, err := catalog.Seed()
	if err != nil {
		return nil, err
	}
	log.WithField("database", gal.cfg.Database).Info("Seeding empty catalog database")
	if err := gal.service.Import(ctx, gal.db, seed); err != nil {
		return nil, err
	}
	return gal.service.Load(ctx)
}

// fetcher returns the page source: SQL paging for a database, the simulated delay otherwise.
func (gal *gallery) fetcher(items []showcase.Item, delay bool) usecase.PageFetcher {
	if gal.db != nil {
		return gal.db
	}
	if !delay {
		return pager.NewDelayed(items, 0)
	}
	return pager.NewDelayed(items, gal.cfg.LoadDelay())
}

func parseFilter(kind, category string) (showcase.Kind, showcase.Category, error) {
	k, err := showcase.ParseKind(kind)
	if err != nil {
		return "", "", err
	}
	c, err := showcase.ParseCategory(category)
	if err != nil {
		return "", "", err
	}
	return k, c, nil
}

// BrowseCmd starts the terminal UI.
type BrowseCmd struct{}

// Run starts the gallery TUI. Logs go to the configured log file.
func (c *BrowseCmd) Run(g *Globals) error {
	gal, err := openGallery(g)
	if err != nil {
		return err
	}
	defer func() { _ = gal.Close() }()

	logFile, err := logging.ToFile(gal.cfg.LogFile, gal.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	items, err := gal.items(context.Background())
	if err != nil {
		return err
	}
	fetcher := gal.fetcher(items, true)
	manager := usecase.NewFeedManager(items, fetcher, usecase.WithPageSize(gal.cfg.PageSize))

	log.WithFields(log.Fields{
		"items":     len(items),
		"page_size": manager.PageSize(),
		"config":    gal.store.Path(),
	}).Info("Starting gallery")

	p := tea.NewProgram(tui.NewModel(gal.cfg, manager, fetcher), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// ListCmd prints a filtered feed.
type ListCmd struct {
	Kind     string `help:"Item kind (app or idea)" default:"app" short:"k"`
	Category string `help:"Category filter" default:"All" short:"c"`
	Delay    bool   `help:"Honour the configured page load delay"`
}

// Run loads pages through the feed manager until the feed is exhausted.
func (c *ListCmd) Run(g *Globals) error {
	gal, err := openGallery(g)
	if err != nil {
		return err
	}
	defer func() { _ = gal.Close() }()
	if err := logging.Setup(os.Stderr, gal.cfg.LogLevel); err != nil {
		return err
	}

	kind, category, err := parseFilter(c.Kind, c.Category)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	items, err := gal.items(ctx)
	if err != nil {
		return err
	}
	manager := usecase.NewFeedManager(items, gal.fetcher(items, c.Delay),
		usecase.WithPageSize(gal.cfg.PageSize),
		usecase.WithFilter(kind, category),
	)
	feed, err := drainFeed(ctx, manager)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(g.out(), renderFeed(feed))
	return err
}

func drainFeed(ctx context.Context, manager *usecase.FeedManager) (usecase.FeedState, error) {
	for {
		loaded, err := manager.LoadNextPage(ctx)
		if err != nil {
			return usecase.FeedState{}, err
		}
		if !loaded && !manager.CanLoad() {
			return manager.Snapshot(), nil
		}
	}
}

func renderFeed(feed usecase.FeedState) string {
	if len(feed.Items) == 0 {
		return fmt.Sprintf("No %s found in %s.", feed.Kind.Plural(), feed.Category)
	}
	rows := lo.Map(feed.Items, func(it showcase.Item, _ int) []string {
		return []string{it.ID, it.Name, it.DeveloperName, string(it.PrimaryCategory()), fmt.Sprint(it.LikeCount)}
	})
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "BY", "CATEGORY", "LIKES").
		Rows(rows...)
	return fmt.Sprintf("%s\nYou've seen all %d %s", t.String(), feed.Total, feed.Kind.Plural())
}

// RelatedCmd prints related items.
type RelatedCmd struct {
	ID string `arg:"" help:"Item ID"`
}

// Run resolves the related items of one item.
func (c *RelatedCmd) Run(g *Globals) error {
	gal, err := openGallery(g)
	if err != nil {
		return err
	}
	defer func() { _ = gal.Close() }()
	if err := logging.Setup(os.Stderr, gal.cfg.LogLevel); err != nil {
		return err
	}

	items, err := gal.items(context.Background())
	if err != nil {
		return err
	}
	manager := usecase.NewFeedManager(items, gal.fetcher(items, false))
	current, ok := manager.Item(c.ID)
	if !ok {
		return fmt.Errorf("item %q not found", c.ID)
	}

	related := manager.RelatedItems(current)
	out := g.out()
	_, _ = fmt.Fprintf(out, "Related to %s (%s):\n", current.Name, current.Kind)
	if len(related) == 0 {
		_, err = fmt.Fprintln(out, "  nothing related")
		return err
	}
	for i, it := range related {
		_, _ = fmt.Fprintf(out, "  %d. %s · %s\n", i+1, it.Name, it.PrimaryCategory())
	}
	return nil
}

// ImportCmd imports items into the writable catalog.
type ImportCmd struct {
	Source   string `arg:"" help:"YAML catalog file, feed file or feed URL"`
	Format   string `help:"Source format (auto, yaml, feed)" enum:"auto,yaml,feed" default:"auto"`
	Kind     string `help:"Kind of imported feed entries" default:"idea"`
	Platform string `help:"Platform of imported feed entries" default:"Web App"`
	Category string `help:"Category for feed entries without a known one" default:"Productivity"`
	Database string `help:"Import into this SQLite database and make it the configured catalog" type:"path"`
}

// Run reads the source and upserts its items.
func (c *ImportCmd) Run(g *Globals) error {
	store, err := config.Load(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.Database != "" {
		if err := store.SetDatabase(c.Database); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}
	gal := newGallery(store)
	defer func() { _ = gal.Close() }()
	if err := logging.Setup(os.Stderr, gal.cfg.LogLevel); err != nil {
		return err
	}
	if gal.writer == nil {
		return fmt.Errorf("no writable catalog: set database or catalog_file in %s", store.Path())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	items, err := c.read(ctx)
	if err != nil {
		return err
	}
	if err := gal.service.Import(ctx, gal.writer, items); err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.out(), "Imported %d items\n", len(items))
	return err
}

func (c *ImportCmd) read(ctx context.Context) ([]showcase.Item, error) {
	format := c.Format
	if format == "" || format == "auto" {
		switch strings.ToLower(filepath.Ext(c.Source)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "feed"
		}
	}

	if format == "yaml" {
		f, err := os.Open(c.Source)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return catalog.Decode(f)
	}

	kind, err := showcase.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	platform, err := showcase.ParsePlatform(c.Platform)
	if err != nil {
		return nil, err
	}
	category, err := showcase.ParseCategory(c.Category)
	if err != nil {
		return nil, err
	}
	return feedimport.Import(ctx, c.Source, feedimport.Options{Kind: kind, Platform: platform, Category: category})
}

// CategoriesCmd prints the category vocabulary.
type CategoriesCmd struct{}

// Run prints each category with the number of published apps and ideas in it.
func (c *CategoriesCmd) Run(g *Globals) error {
	gal, err := openGallery(g)
	if err != nil {
		return err
	}
	defer func() { _ = gal.Close() }()
	if err := logging.Setup(os.Stderr, gal.cfg.LogLevel); err != nil {
		return err
	}

	items, err := gal.items(context.Background())
	if err != nil {
		return err
	}
	rows := lo.Map(showcase.Categories(), func(cat showcase.Category, _ int) []string {
		apps := len(showcase.Filter(items, showcase.KindApp, cat))
		ideas := len(showcase.Filter(items, showcase.KindIdea, cat))
		return []string{string(cat), fmt.Sprint(apps), fmt.Sprint(ideas)}
	})
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CATEGORY", "APPS", "IDEAS").
		Rows(rows...)
	_, err = fmt.Fprintln(g.out(), t.String())
	return err
}

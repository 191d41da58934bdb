// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
	"github.com/tesso57/atelie/internal/presentation/tui/intent"
	"github.com/tesso57/atelie/internal/presentation/tui/presenter"
	"github.com/tesso57/atelie/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Manager     *usecase.FeedManager
	Fetcher     usecase.PageFetcher
	OpenBrowser func(string) error
	// Ctx scopes page fetches; Cancel is called when the user confirms quit.
	Ctx    context.Context
	Cancel context.CancelFunc
}

// PageLoadedMsg is emitted when a page fetch started by MaybeLoadMore returns.
type PageLoadedMsg struct {
	Req   usecase.PageRequest
	Items []showcase.Item
	Err   error
}

// LoadPageCmd creates a command that fetches one page off the update loop.
func LoadPageCmd(ctx context.Context, fetcher usecase.PageFetcher, req usecase.PageRequest) tea.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		items, err := fetcher.FetchPage(ctx, req)
		return PageLoadedMsg{Req: req, Items: items, Err: err}
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg, deps)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}

	switch s.Session {
	case state.CategoryView:
		return handleCategoryViewIntent(s, parsed, deps)
	case state.ItemView:
		return handleItemViewIntent(s, parsed, deps)
	case state.DetailView:
		return handleDetailViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) tea.Cmd {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
	if s.Session == state.DetailView {
		refreshDetailViewport(s, deps)
	}
	return MaybeLoadMore(s, deps)
}

// HandlePageLoadedMsg lands a finished fetch and checks again whether the end of the feed is in view.
func HandlePageLoadedMsg(s *state.ModelState, msg PageLoadedMsg, deps Deps) tea.Cmd {
	err := deps.Manager.Complete(msg.Req, msg.Items, msg.Err)
	RefreshFeed(s, deps)
	if err != nil {
		log.WithError(err).WithField("page", msg.Req.Page).Warn("Page load failed")
		s.Err = err
		return nil
	}
	s.Err = nil
	return MaybeLoadMore(s, deps)
}

// HandleCategorySelection applies the category under the sidebar cursor as the active filter.
func HandleCategorySelection(s *state.ModelState, deps Deps) tea.Cmd {
	c, ok := s.CategoryList.SelectedItem().(*presenter.CategoryItem)
	if !ok || c.Category == s.Feed.Category {
		return nil
	}
	return applyFilter(s, deps, s.Feed.Kind, c.Category)
}

// NearEnd reports whether the last displayed card is within the threshold of the cursor or on screen.
func NearEnd(s *state.ModelState) bool {
	n := len(s.ItemList.Items())
	if n == 0 {
		return false
	}
	if s.ItemList.Index() >= n-1-max(s.NearEndThreshold, 0) {
		return true
	}
	return s.ItemList.Paginator.OnLastPage()
}

// MaybeLoadMore starts the next page load when the end of the feed is in view.
// It does nothing while a load is in flight or once the feed is exhausted.
func MaybeLoadMore(s *state.ModelState, deps Deps) tea.Cmd {
	if deps.Manager == nil || deps.Fetcher == nil || !NearEnd(s) {
		return nil
	}
	req, ok := deps.Manager.Begin()
	if !ok {
		return nil
	}
	s.Feed = deps.Manager.Snapshot()
	return tea.Batch(s.Spinner.Tick, LoadPageCmd(deps.Ctx, deps.Fetcher, req))
}

// RefreshFeed copies the manager snapshot into the lists.
func RefreshFeed(s *state.ModelState, deps Deps) {
	if deps.Manager == nil {
		return
	}
	s.Feed = deps.Manager.Snapshot()
	presenter.ApplyItemList(&s.ItemList, s.Feed, deps.Manager.IsLiked)
	presenter.ApplyCategoryList(&s.CategoryList, s.Feed.Kind, s.Feed.Category)
	UpdateListSizes(s)
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		if deps.Cancel != nil {
			deps.Cancel()
		}
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleFilterIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.ToggleKind:
		return applyFilter(s, deps, s.Feed.Kind.Other(), s.Feed.Category), true
	case intent.NextCategory:
		return applyFilter(s, deps, s.Feed.Kind, showcase.NextCategory(s.Feed.Category, 1)), true
	case intent.PrevCategory:
		return applyFilter(s, deps, s.Feed.Kind, showcase.NextCategory(s.Feed.Category, -1)), true
	}
	return nil, false
}

func handleCategoryViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	if cmd, ok := handleFilterIntent(s, in, deps); ok {
		return cmd, true
	}
	switch in.Type {
	case intent.Open:
		if len(s.ItemList.Items()) > 0 {
			s.Session = state.ItemView
		}
		return nil, true
	case intent.Back:
		return nil, true
	}
	return nil, false
}

func handleItemViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	if cmd, ok := handleFilterIntent(s, in, deps); ok {
		if len(s.ItemList.Items()) == 0 {
			s.Session = state.CategoryView
		}
		return cmd, true
	}
	switch in.Type {
	case intent.Back:
		s.Session = state.CategoryView
		return nil, true
	case intent.Open:
		if it, ok := selectedItem(s); ok {
			openDetail(s, deps, it.Source)
		}
		return nil, true
	case intent.Like:
		if it, ok := selectedItem(s); ok {
			toggleLike(s, deps, it.Source.ID)
		}
		return nil, true
	case intent.Visit:
		if it, ok := selectedItem(s); ok {
			visit(s, deps, it.Source)
		}
		return nil, true
	}
	return nil, false
}

func handleDetailViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		s.Session = state.ItemView
		s.Detail = nil
		s.Related = nil
		return nil, true
	case intent.Open, intent.Visit:
		if s.Detail != nil {
			visit(s, deps, *s.Detail)
		}
		return nil, true
	case intent.Like:
		if s.Detail != nil {
			toggleLike(s, deps, s.Detail.ID)
		}
		return nil, true
	case intent.SelectRelated:
		if in.Index >= 0 && in.Index < len(s.Related) {
			openDetail(s, deps, s.Related[in.Index])
		}
		return nil, true
	}
	return nil, false
}

func applyFilter(s *state.ModelState, deps Deps, kind showcase.Kind, category showcase.Category) tea.Cmd {
	if deps.Manager == nil {
		return nil
	}
	deps.Manager.SetFilter(kind, category)
	s.Err = nil
	s.StatusMessage = ""
	s.ItemList.ResetSelected()
	RefreshFeed(s, deps)
	return MaybeLoadMore(s, deps)
}

func openDetail(s *state.ModelState, deps Deps, it showcase.Item) {
	s.Detail = &it
	s.Related = deps.Manager.RelatedItems(it)
	s.Session = state.DetailView
	refreshDetailViewport(s, deps)
	s.Viewport.GotoTop()
}

func toggleLike(s *state.ModelState, deps Deps, id string) {
	deps.Manager.ToggleLike(id, !deps.Manager.IsLiked(id))
	RefreshFeed(s, deps)
	if s.Session == state.DetailView {
		refreshDetailViewport(s, deps)
	}
}

func visit(s *state.ModelState, deps Deps, it showcase.Item) {
	link := showcase.ActionLink(it)
	if link == "" {
		s.StatusMessage = fmt.Sprintf("No link available for %s", it.Name)
		return
	}
	if deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(link); err != nil {
		log.WithError(err).WithField("link", link).Warn("Failed to open link")
		s.Err = err
		return
	}
	s.StatusMessage = ""
}

func selectedItem(s *state.ModelState) (*presenter.Item, bool) {
	it, ok := s.ItemList.SelectedItem().(*presenter.Item)
	return it, ok && it != nil
}

func refreshDetailViewport(s *state.ModelState, deps Deps) {
	if s.Detail == nil {
		return
	}
	liked := deps.Manager != nil && deps.Manager.IsLiked(s.Detail.ID)
	s.Viewport.SetContent(buildDetailContentForWidth(s.Detail, liked, s.Related, detailWrapWidth(s)))
}

func detailWrapWidth(s *state.ModelState) int {
	viewportContentWidth := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if viewportContentWidth > 0 {
		return viewportContentWidth
	}
	// Before the first resize.
	return clampMin(s.ItemList.Width()-1-s.Viewport.Style.GetHorizontalFrameSize(), 1)
}

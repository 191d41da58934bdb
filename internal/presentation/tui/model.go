package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/atelie/internal/application/settings"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/presentation/tui/state"
	"github.com/tesso57/atelie/internal/presentation/tui/update"
	"github.com/tesso57/atelie/internal/presentation/tui/view"
	listview "github.com/tesso57/atelie/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	manager  *usecase.FeedManager
	fetcher  usecase.PageFetcher
	state    *state.ModelState

	// ctx scopes in-flight page fetches and ends when the user quits.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new application model. Page loads go through fetcher and land in manager.
func NewModel(cfg settings.Settings, manager *usecase.FeedManager, fetcher usecase.PageFetcher) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		settings: cfg,
		manager:  manager,
		fetcher:  fetcher,
		state:    newModelState(cfg),
		ctx:      ctx,
		cancel:   cancel,
	}
	update.RefreshFeed(m.state, m.deps())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, update.MaybeLoadMore(m.state, m.deps()))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		cmds = append(cmds, update.HandleWindowSize(m.state, msg, m.deps()))
	case update.PageLoadedMsg:
		return m, update.HandlePageLoadedMsg(m.state, msg, m.deps())
	}

	if m.state.Feed.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.CategoryView:
		prevIdx := m.state.CategoryList.Index()
		m.state.CategoryList, cmd = m.state.CategoryList.Update(msg)
		cmds = append(cmds, cmd)
		if m.state.CategoryList.Index() != prevIdx {
			cmds = append(cmds, update.HandleCategorySelection(m.state, m.deps()))
		}
	case state.ItemView:
		m.state.ItemList, cmd = m.state.ItemList.Update(msg)
		cmds = append(cmds, cmd, update.MaybeLoadMore(m.state, m.deps()))
	case state.DetailView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Manager:     m.manager,
		Fetcher:     m.fetcher,
		OpenBrowser: openBrowser,
		Ctx:         m.ctx,
		Cancel:      m.cancel,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:          state.CategoryView,
		CategoryList:     newCategoryList(cfg),
		ItemList:         newItemList(cfg),
		Viewport:         newViewport(),
		Help:             help.New(),
		Spinner:          newSpinner(cfg),
		Keys:             state.NewKeyMap(cfg.KeyMap),
		NearEndThreshold: cfg.NearEndThreshold,
	}

	st.CategoryList.KeyMap.PrevPage = st.Keys.UpPage
	st.CategoryList.KeyMap.NextPage = st.Keys.DownPage
	st.ItemList.KeyMap.PrevPage = st.Keys.UpPage
	st.ItemList.KeyMap.NextPage = st.Keys.DownPage
	return st
}

func newCategoryList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewCategoryDelegate(lipgloss.Color(cfg.Theme.Muted)), 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newItemList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewCardDelegate(lipgloss.Color(cfg.Theme.Accent)), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/atelie/internal/application/settings"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
	"github.com/tesso57/atelie/internal/infrastructure/catalog"
	"github.com/tesso57/atelie/internal/presentation/tui/update"
)

type stubPageFetcher struct {
	mock.Mock
	items []showcase.Item
}

func (s *stubPageFetcher) FetchPage(_ context.Context, req usecase.PageRequest) ([]showcase.Item, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(req)
		items, _ := args.Get(0).([]showcase.Item)
		return items, args.Error(1)
	}
	view := showcase.Filter(s.items, req.Kind, req.Category)
	if req.Offset >= len(view) {
		return nil, nil
	}
	return view[req.Offset:min(req.Offset+req.Limit, len(view))], nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		PageSize:         4,
		NearEndThreshold: 1,
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Left: "h", Right: "l",
			UpPage: "ctrl+u", DownPage: "ctrl+d", Top: "g", Bottom: "G",
			Open: "enter", Back: "esc", Quit: "q",
			Like: "f", Visit: "o", ToggleKind: "tab",
			NextCategory: "]", PrevCategory: "[",
		},
		Theme: settings.ThemeConfig{Accent: "205", Muted: "244"},
	}
}

func seedItems(t *testing.T) []showcase.Item {
	t.Helper()
	items, err := catalog.Seed()
	require.NoError(t, err)
	return items
}

func newTestModel(cfg settings.Settings, items []showcase.Item, fetcher usecase.PageFetcher) *Model {
	manager := usecase.NewFeedManager(items, fetcher, usecase.WithPageSize(cfg.PageSize))
	return NewModel(cfg, manager, fetcher)
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// pageLoads executes cmd and the commands it batches, returning any page results.
func pageLoads(cmd tea.Cmd) []update.PageLoadedMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case update.PageLoadedMsg:
		return []update.PageLoadedMsg{msg}
	case tea.BatchMsg:
		var out []update.PageLoadedMsg
		for _, c := range msg {
			out = append(out, pageLoads(c)...)
		}
		return out
	}
	return nil
}

// drain feeds page results back into the model until no further load is started.
func drain(m *Model, cmd tea.Cmd) {
	for cmd != nil {
		loads := pageLoads(cmd)
		if len(loads) == 0 {
			return
		}
		next := make([]tea.Cmd, 0, len(loads))
		for _, msg := range loads {
			_, c := m.Update(msg)
			next = append(next, c)
		}
		cmd = tea.Batch(next...)
	}
}

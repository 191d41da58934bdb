package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/atelie/internal/presentation/tui/state"
)

func TestQuitDialog(t *testing.T) {
	items := seedItems(t)
	m := newTestModel(testSettings(), items, &stubPageFetcher{items: items})

	// 1. Initial State
	if m.state.Session != state.CategoryView {
		t.Error("Initial state should be categoryView")
	}

	// 2. Press 'q' -> Should go to quitView, not quit immediately
	tm, cmd := m.Update(keyRunes('q'))
	m = tm.(*Model)
	if m.state.Session != state.QuitView {
		t.Error("Should switch to quitView on 'q'")
	}
	if cmd != nil {
		t.Error("Should not return tea.Quit command yet")
	}
	if got := m.View(); !containsAll(got, "Are you sure you want to quit?") {
		t.Errorf("quit dialog not rendered: %q", got)
	}

	// 3. Press 'n' -> Should return to categoryView
	tm, _ = m.Update(keyRunes('n'))
	m = tm.(*Model)
	if m.state.Session != state.CategoryView {
		t.Error("Should return to categoryView on 'n'")
	}

	// 4. From Item View, esc cancels
	m.state.Session = state.ItemView
	tm, _ = m.Update(keyRunes('q'))
	m = tm.(*Model)
	if m.state.Previous != state.ItemView {
		t.Error("Should remember previous state as itemView")
	}
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tm.(*Model)
	if m.state.Session != state.ItemView {
		t.Error("Should return to itemView on 'esc'")
	}

	// 5. Confirm Quit ('y')
	tm, _ = m.Update(keyRunes('q'))
	m = tm.(*Model)
	_, cmd = m.Update(keyRunes('y'))
	if cmd == nil {
		t.Fatal("Should return a command on 'y'")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Should return tea.Quit on 'y'")
	}
	if m.ctx.Err() == nil {
		t.Error("Should cancel in-flight page loads on 'y'")
	}
}

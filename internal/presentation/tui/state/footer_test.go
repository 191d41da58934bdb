package state

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/atelie/internal/application/settings"
)

func TestFooterText(t *testing.T) {
	tests := []struct {
		name          string
		session       Session
		statusMessage string
		helpText      string
		want          string
	}{
		{
			name:     "help only without status",
			session:  ItemView,
			helpText: "help",
			want:     "help",
		},
		{
			name:          "status prepended",
			session:       ItemView,
			statusMessage: "Liked FitWoody",
			helpText:      "help",
			want:          "Liked FitWoody\nhelp",
		},
		{
			name:          "status only when help empty",
			session:       DetailView,
			statusMessage: "No link available",
			want:          "No link available",
		},
		{
			name:          "quit dialog hides status",
			session:       QuitView,
			statusMessage: "stale",
			helpText:      "help",
			want:          "help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.session, tt.statusMessage, tt.helpText)
			if got != tt.want {
				t.Fatalf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewKeyMap(t *testing.T) {
	keys := NewKeyMap(settings.KeyMapConfig{
		Like:       "f",
		ToggleKind: "tab",
		DownPage:   "pgdn, ctrl+d",
	})

	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, keys.Like) {
		t.Error("f should toggle like")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyTab}, keys.ToggleKind) {
		t.Error("tab should toggle kind")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyPgDown}, keys.DownPage) {
		t.Error("pgdown alias should be bound")
	}
	if len(keys.FullHelp()) != 5 {
		t.Errorf("FullHelp columns = %d, want 5", len(keys.FullHelp()))
	}
}

// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/atelie/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	CategoryView Session = iota
	ItemView
	DetailView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	UpPage       key.Binding
	DownPage     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Open         key.Binding
	Back         key.Binding
	Quit         key.Binding
	Like         key.Binding
	Visit        key.Binding
	ToggleKind   key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Help         key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open, k.ToggleKind, k.Like}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.UpPage, k.DownPage},
		{k.Open, k.Back, k.Quit},
		{k.ToggleKind, k.NextCategory, k.PrevCategory},
		{k.Like, k.Visit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:           binding(cfg.Up, "up"),
		Down:         binding(cfg.Down, "down"),
		Left:         binding(cfg.Left, "back/categories"),
		Right:        binding(cfg.Right, "details"),
		UpPage:       binding(cfg.UpPage, "pgup"),
		DownPage:     binding(cfg.DownPage, "pgdn"),
		Top:          binding(cfg.Top, "top"),
		Bottom:       binding(cfg.Bottom, "bottom"),
		Open:         binding(cfg.Open, "open"),
		Back:         binding(cfg.Back, "back"),
		Quit:         binding(cfg.Quit, "quit"),
		Like:         binding(cfg.Like, "like"),
		Visit:        binding(cfg.Visit, "visit/interest"),
		ToggleKind:   binding(cfg.ToggleKind, "apps/ideas"),
		NextCategory: binding(cfg.NextCategory, "next category"),
		PrevCategory: binding(cfg.PrevCategory, "prev category"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, desc),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}

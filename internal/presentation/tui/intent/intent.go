// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/atelie/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Open
	Back
	Like
	Visit
	ToggleKind
	NextCategory
	PrevCategory
	SelectRelated
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
	// Index is the zero-based related item for SelectRelated.
	Index int
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Right) || key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Left) || key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Like):
		return Intent{Type: Like}
	case key.Matches(msg, keys.Visit):
		return Intent{Type: Visit}
	case key.Matches(msg, keys.ToggleKind):
		return Intent{Type: ToggleKind}
	case key.Matches(msg, keys.NextCategory):
		return Intent{Type: NextCategory}
	case key.Matches(msg, keys.PrevCategory):
		return Intent{Type: PrevCategory}
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return Intent{Type: SelectRelated, Index: int(s[0] - '1')}
	}
	return Intent{Type: None}
}

package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session          Session
	Previous         Session
	CategoryList     list.Model
	ItemList         list.Model
	Viewport         viewport.Model
	Help             help.Model
	Spinner          spinner.Model
	Keys             KeyMap
	Width            int
	Height           int
	Feed             usecase.FeedState
	Detail           *showcase.Item
	Related          []showcase.Item
	NearEndThreshold int
	Err              error
	StatusMessage    string
}

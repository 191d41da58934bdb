// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CardItem is an item that can be rendered by CardDelegate.
type CardItem interface {
	list.Item
	Title() string
	Description() string
	Featured() bool
	IsLiked() bool
}

// CardDelegate renders a feed card as a title line and a summary line.
type CardDelegate struct {
	Styles list.DefaultItemStyles
	Accent lipgloss.Color
}

// NewCardDelegate creates a new CardDelegate.
func NewCardDelegate(accent lipgloss.Color) *CardDelegate {
	return &CardDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		Accent: accent,
	}
}

// Height returns the height of the item.
func (d *CardDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d *CardDelegate) Spacing() int {
	return 1
}

// Update handles messages for the delegate.
func (d *CardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *CardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(CardItem)
	if !ok {
		return
	}

	title := i.Title()
	if i.Featured() {
		title = "★ " + title
	}
	if i.IsLiked() {
		title += " " + lipgloss.NewStyle().Foreground(d.Accent).Render("♥")
	}

	titleStyle, descStyle := lineStyles(d.Styles, m, index)
	writeLine(w, m, titleStyle, title)
	_, _ = io.WriteString(w, "\n")
	writeLine(w, m, descStyle, i.Description())
}

// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/atelie/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/atelie/internal/presentation/tui/components/main"
	"github.com/tesso57/atelie/internal/presentation/tui/components/modal"
	"github.com/tesso57/atelie/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/atelie/internal/presentation/tui/metrics"
	"github.com/tesso57/atelie/internal/presentation/tui/presenter"
	"github.com/tesso57/atelie/internal/presentation/tui/state"
	"github.com/tesso57/atelie/internal/presentation/tui/textutil"
	"github.com/tesso57/atelie/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	return sidebar.Props{
		View:   m.state.CategoryList.View(),
		Width:  m.state.CategoryList.Width(),
		Height: m.state.CategoryList.Height(),
		Active: m.state.Session == state.CategoryView,
		Title:  presenter.KindLabel(m.state.Feed.Kind),
		Accent: lipgloss.Color(m.settings.Theme.Accent),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	width := m.state.ItemList.Width() - metrics.HeaderWidthPadding
	feed := m.state.Feed

	if m.state.Session == state.DetailView && m.state.Detail != nil {
		it := m.state.Detail
		return header.Props{
			Visible: true,
			Title:   headerLine(it.Name, width),
			Summary: headerLine(fmt.Sprintf("by %s · %s", it.DeveloperName, it.PrimaryCategory()), width),
		}
	}
	return header.Props{
		Visible: true,
		Title:   headerLine(presenter.FeedTitle(feed.Kind, feed.Category), width),
		Summary: headerLine(fmt.Sprintf("Showing %d of %d %s", len(feed.Items), feed.Total, feed.Kind.Plural()), width),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body, status string
	switch {
	case m.state.Session == state.DetailView:
		body = m.state.Viewport.View()
	case len(m.state.ItemList.Items()) > 0:
		body = m.state.ItemList.View()
	}
	if m.state.Session != state.DetailView {
		status = presenter.StatusLine(m.state.Feed)
		if m.state.Feed.Loading {
			status = fmt.Sprintf("%s %s", m.state.Spinner.View(), status)
		}
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(m.settings.Theme.Muted)).Render(status)
	}
	if m.state.Err != nil && !m.state.Feed.Loading {
		body = fmt.Sprintf("Error: %v\n\n%s", m.state.Err, body)
	}

	return mainview.Props{
		Width:  m.state.ItemList.Width(),
		Height: m.state.ItemList.Height() + metrics.HeaderLines + metrics.StatusLines,
		Body:   body,
		Status: status,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, m.state.StatusMessage, helpText)
}

func headerLine(text string, width int) string {
	if width <= 0 {
		return textutil.SingleLine(text)
	}
	return textutil.Truncate(textutil.SingleLine(text), width)
}

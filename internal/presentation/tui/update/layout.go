package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/atelie/internal/presentation/tui/metrics"
	"github.com/tesso57/atelie/internal/presentation/tui/state"
)

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	mainListHeight    int
}

// UpdateListSizes fits the category list, the card list and the detail viewport to the terminal.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.CategoryList.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
	s.ItemList.SetSize(layout.mainWidth, layout.mainListHeight)
	s.Viewport.Width = layout.mainWidth
	s.Viewport.Height = layout.mainListHeight + metrics.StatusLines
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	availableHeight := clampMin(s.Height-footerHeight(s), 1)

	mainListHeight := clampMin(availableHeight-metrics.HeaderLines-metrics.StatusLines, 1)
	sidebarListHeight := clampMin(availableHeight-metrics.SidebarTitleLines, 1)

	sidebarWidth := s.Width / 3
	mainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth, 1)

	sidebarListHeight = reservePaginationSpace(s.CategoryList, sidebarListHeight)
	mainListHeight = reservePaginationSpace(s.ItemList, mainListHeight)

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         mainWidth,
		sidebarListHeight: sidebarListHeight,
		mainListHeight:    mainListHeight,
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Session, s.StatusMessage, s.Help.View(&s.Keys)))
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}
	if height-statusHeight < 1 {
		return height
	}
	if len(m.VisibleItems()) > height-statusHeight {
		return height - 1
	}
	return height
}

func clampMin(value, lower int) int {
	return max(value, lower)
}

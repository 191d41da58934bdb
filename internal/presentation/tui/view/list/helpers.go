package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/atelie/internal/presentation/tui/metrics"
	"github.com/tesso57/atelie/internal/presentation/tui/textutil"
)

func withItemPadding(styles list.DefaultItemStyles) list.DefaultItemStyles {
	for _, s := range []*lipgloss.Style{
		&styles.NormalTitle, &styles.SelectedTitle, &styles.DimmedTitle,
		&styles.NormalDesc, &styles.SelectedDesc, &styles.DimmedDesc,
	} {
		*s = s.PaddingRight(metrics.ItemRightPadding)
	}
	return styles
}

// lineStyles picks the title and description styles for the row at index.
func lineStyles(styles list.DefaultItemStyles, m list.Model, index int) (title, desc lipgloss.Style) {
	if index == m.Index() {
		return styles.SelectedTitle, styles.SelectedDesc
	}
	return styles.NormalTitle, styles.NormalDesc
}

// writeLine renders text in style, cut to the list width.
func writeLine(w io.Writer, m list.Model, style lipgloss.Style, text string) {
	maxWidth := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding
	_, _ = io.WriteString(w, style.Render(textutil.Truncate(text, maxWidth)))
}

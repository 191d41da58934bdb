package header

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		props       Props
		wantTitle   string
		wantSummary string
		wantVis     bool
	}{
		{
			name: "Visible",
			props: Props{
				Visible: true,
				Title:   "Explore · Design",
				Summary: "Showing 1 of 1",
			},
			wantTitle:   "Explore · Design",
			wantSummary: "Showing 1 of 1",
			wantVis:     true,
		},
		{
			name:    "Hidden",
			props:   Props{Visible: false, Title: "Ideas · All"},
			wantVis: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !tt.wantVis {
				if got != "" {
					t.Errorf("Render() = %q, want empty string", got)
				}
				return
			}

			if !strings.Contains(got, tt.wantTitle) {
				t.Errorf("Render() = %q, want title %q", got, tt.wantTitle)
			}
			if !strings.Contains(got, tt.wantSummary) {
				t.Errorf("Render() = %q, want summary %q", got, tt.wantSummary)
			}
			if !strings.Contains(got, "✦") {
				t.Error("Render() missing title marker")
			}
		})
	}
}

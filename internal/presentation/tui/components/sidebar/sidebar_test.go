package sidebar

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		wantView string
	}{
		{
			name: "Active",
			props: Props{
				View:   "CATEGORIES",
				Title:  "Explore",
				Width:  20,
				Height: 10,
				Active: true,
				Accent: "99",
			},
			wantView: "CATEGORIES",
		},
		{
			name: "Inactive default accent",
			props: Props{
				View:   "CATEGORIES",
				Title:  "Ideas",
				Width:  20,
				Height: 10,
			},
			wantView: "CATEGORIES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !strings.Contains(got, tt.wantView) {
				t.Errorf("Render() = %q, want content %q", got, tt.wantView)
			}
			if !strings.Contains(got, tt.props.Title) {
				t.Errorf("Render() = %q, want title %q", got, tt.props.Title)
			}
		})
	}
}

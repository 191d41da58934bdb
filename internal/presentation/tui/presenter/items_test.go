package presenter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
)

func sampleItems() []showcase.Item {
	return []showcase.Item{
		{ID: "1", Kind: showcase.KindApp, Name: "FitWoody", DeveloperName: "Chubby Studio S.L.", Categories: []showcase.Category{showcase.CategoryHealth}, LikeCount: 89, IsFeatured: true},
		{ID: "2", Kind: showcase.KindApp, Name: "Lumina Notes", LikeCount: 67},
	}
}

func TestBuildItemListItems(t *testing.T) {
	items := BuildItemListItems(sampleItems(), func(id string) bool { return id == "1" })
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	first := items[0].(*Item)
	if first.Title() != "FitWoody" || first.FilterValue() != "FitWoody" {
		t.Errorf("unexpected title %q", first.Title())
	}
	if !first.IsLiked() || first.Likes() != 90 {
		t.Errorf("liked card should show seed+1, got %d", first.Likes())
	}
	if !first.Featured() {
		t.Error("FitWoody should be featured")
	}
	if got := first.Description(); got != "Health · by Chubby Studio S.L. · ♥ 90" {
		t.Errorf("Description() = %q", got)
	}

	second := items[1].(*Item)
	if second.IsLiked() || second.Likes() != 67 {
		t.Errorf("unliked card should show seed count, got %d", second.Likes())
	}
	if got := second.Description(); got != "♥ 67" {
		t.Errorf("Description() = %q", got)
	}

	if BuildItemListItems(sampleItems(), nil)[0].(*Item).Liked {
		t.Error("nil liked func should mean nothing is liked")
	}
}

func TestApplyItemListKeepsCursor(t *testing.T) {
	l := list.New(nil, list.NewDefaultDelegate(), 40, 40)
	feed := usecase.FeedState{Kind: showcase.KindApp, Category: showcase.CategoryAll, Items: sampleItems()}
	ApplyItemList(&l, feed, nil)
	l.Select(1)

	ApplyItemList(&l, feed, nil)
	if l.Index() != 1 {
		t.Errorf("cursor moved to %d", l.Index())
	}
	if l.Title != "Explore · All" {
		t.Errorf("Title = %q", l.Title)
	}

	feed.Items = feed.Items[:1]
	ApplyItemList(&l, feed, nil)
	if l.Index() != 0 {
		t.Errorf("cursor should clamp to the last item, got %d", l.Index())
	}
}

func TestApplyCategoryList(t *testing.T) {
	l := list.New(nil, list.NewDefaultDelegate(), 20, 40)
	ApplyCategoryList(&l, showcase.KindIdea, showcase.CategoryDesign)

	if len(l.Items()) != len(showcase.Categories()) {
		t.Fatalf("Expected %d categories, got %d", len(showcase.Categories()), len(l.Items()))
	}
	selected, ok := l.SelectedItem().(*CategoryItem)
	if !ok || selected.Category != showcase.CategoryDesign || !selected.IsActive() {
		t.Errorf("selected = %+v, want active Design", l.SelectedItem())
	}
	if l.Title != "Ideas" {
		t.Errorf("Title = %q, want Ideas", l.Title)
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		feed usecase.FeedState
		want string
	}{
		{
			name: "empty apps",
			feed: usecase.FeedState{Kind: showcase.KindApp},
			want: "No apps found in this category.\nTry selecting a different category.",
		},
		{
			name: "empty ideas",
			feed: usecase.FeedState{Kind: showcase.KindIdea},
			want: "No ideas found in this category.",
		},
		{
			name: "loading",
			feed: usecase.FeedState{Kind: showcase.KindApp, Items: sampleItems(), Loading: true, HasMore: true},
			want: "Loading more...",
		},
		{
			name: "exhausted",
			feed: usecase.FeedState{Kind: showcase.KindApp, Items: sampleItems(), Total: 2},
			want: "You've seen all 2 apps",
		},
		{
			name: "more to come",
			feed: usecase.FeedState{Kind: showcase.KindApp, Items: sampleItems(), HasMore: true},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusLine(tt.feed)
			if tt.want == "" {
				if got != "" {
					t.Errorf("StatusLine() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("StatusLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

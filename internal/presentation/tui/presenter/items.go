// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/atelie/internal/application/usecase"
	"github.com/tesso57/atelie/internal/domain/showcase"
)

// Item is a view model for one card in the feed.
type Item struct {
	Source showcase.Item
	Liked  bool
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.Source.Name }

// Title returns the card title.
func (i *Item) Title() string { return i.Source.Name }

// Featured reports whether the card is highlighted.
func (i *Item) Featured() bool { return i.Source.IsFeatured }

// IsLiked returns the viewer's like state.
func (i *Item) IsLiked() bool { return i.Liked }

// Likes returns the like counter as displayed.
func (i *Item) Likes() int { return showcase.DisplayLikes(i.Source, i.Liked) }

// Description returns the one-line card summary.
func (i *Item) Description() string {
	parts := make([]string, 0, 3)
	if c := i.Source.PrimaryCategory(); c != "" {
		parts = append(parts, string(c))
	}
	if i.Source.DeveloperName != "" {
		parts = append(parts, "by "+i.Source.DeveloperName)
	}
	parts = append(parts, fmt.Sprintf("♥ %d", i.Likes()))
	return strings.Join(parts, " · ")
}

// BuildItemListItems builds list items for the displayed feed.
func BuildItemListItems(items []showcase.Item, liked func(string) bool) []list.Item {
	result := make([]list.Item, len(items))
	for i, it := range items {
		result[i] = &Item{Source: it, Liked: liked != nil && liked(it.ID)}
	}
	return result
}

// ApplyItemList replaces the list contents with the feed, keeping the cursor where possible.
func ApplyItemList(model *list.Model, feed usecase.FeedState, liked func(string) bool) {
	idx := model.Index()
	model.SetItems(BuildItemListItems(feed.Items, liked))
	model.Title = FeedTitle(feed.Kind, feed.Category)
	if n := len(feed.Items); n > 0 {
		model.Select(min(idx, n-1))
	}
}

// FeedTitle names the current selection, e.g. "Explore · Design" or "Ideas · All".
func FeedTitle(kind showcase.Kind, category showcase.Category) string {
	return fmt.Sprintf("%s · %s", KindLabel(kind), category)
}

// KindLabel returns the toggle label for kind.
func KindLabel(kind showcase.Kind) string {
	if kind == showcase.KindIdea {
		return "Ideas"
	}
	return "Explore"
}

// CategoryItem is a view model for one sidebar entry.
type CategoryItem struct {
	Category showcase.Category
	Active   bool
}

// FilterValue implements list.Item.
func (c *CategoryItem) FilterValue() string { return string(c.Category) }

// Title returns the category label.
func (c *CategoryItem) Title() string { return string(c.Category) }

// IsActive reports whether the category is the current filter.
func (c *CategoryItem) IsActive() bool { return c.Active }

// BuildCategoryListItems builds the sidebar entries in vocabulary order.
func BuildCategoryListItems(active showcase.Category) []list.Item {
	categories := showcase.Categories()
	items := make([]list.Item, len(categories))
	for i, c := range categories {
		items[i] = &CategoryItem{Category: c, Active: c == active}
	}
	return items
}

// ApplyCategoryList marks active in the sidebar and moves the cursor onto it.
func ApplyCategoryList(model *list.Model, kind showcase.Kind, active showcase.Category) {
	items := BuildCategoryListItems(active)
	model.SetItems(items)
	model.Title = KindLabel(kind)
	for i, it := range items {
		if c, ok := it.(*CategoryItem); ok && c.Active {
			model.Select(i)
			break
		}
	}
}

// StatusLine returns the text shown under the feed: the loading indicator label, the
// end-of-feed message or the empty state.
func StatusLine(feed usecase.FeedState) string {
	plural := feed.Kind.Plural()
	switch {
	case len(feed.Items) == 0 && !feed.Loading:
		return fmt.Sprintf("No %s found in this category.\nTry selecting a different category.", plural)
	case feed.Loading:
		return "Loading more..."
	case !feed.HasMore:
		return fmt.Sprintf("You've seen all %d %s", feed.Total, plural)
	default:
		return ""
	}
}

package showcase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrDuplicateID is returned when two items share an identifier.
var ErrDuplicateID = errors.New("duplicate item id")

// RelatedLimit caps the number of related items shown in a detail view.
const RelatedLimit = 3

// Filter returns the items of the given kind tagged with category, in collection order.
// CategoryAll matches every item of the kind; an item without categories never matches
// a specific category.
func Filter(items []Item, kind Kind, category Category) []Item {
	return lo.Filter(items, func(it Item, _ int) bool {
		return it.Kind == kind && (category == CategoryAll || it.HasCategory(category))
	})
}

// Related returns up to limit items of current's kind that share a category with it,
// or that carry accolades while current does too. Collection order is kept and current
// itself is never included.
func Related(items []Item, current Item, limit int) []Item {
	if limit <= 0 {
		return nil
	}
	related := make([]Item, 0, limit)
	for _, it := range items {
		if it.ID == current.ID || it.Kind != current.Kind {
			continue
		}
		// Any accolade on both sides counts as a match, whatever the labels are.
		if !lo.Some(it.Categories, current.Categories) && !(it.HasAccolades() && current.HasAccolades()) {
			continue
		}
		related = append(related, it)
		if len(related) == limit {
			break
		}
	}
	return related
}

// Find returns the item with the given id.
func Find(items []Item, id string) (Item, bool) {
	return lo.Find(items, func(it Item) bool { return it.ID == id })
}

// Validate checks identifiers and vocabularies of a collection. Platforms outside the
// vocabulary are only reported when strictPlatforms is set.
func Validate(items []Item, strictPlatforms bool) error {
	var errs []error
	seen := make(map[string]struct{}, len(items))
	for idx, it := range items {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("item %d: empty id", idx))
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, id))
		}
		seen[id] = struct{}{}

		if _, err := ParseKind(string(it.Kind)); err != nil {
			errs = append(errs, fmt.Errorf("item %s: %w", id, err))
		}
		for _, c := range it.Categories {
			if parsed, err := ParseCategory(string(c)); err != nil || parsed == CategoryAll {
				errs = append(errs, fmt.Errorf("item %s: %w: %q", id, ErrUnknownCategory, c))
			}
		}
		if !strictPlatforms {
			continue
		}
		for _, p := range it.Platforms {
			if _, err := ParsePlatform(string(p)); err != nil {
				errs = append(errs, fmt.Errorf("item %s: %w", id, err))
			}
		}
	}
	return errors.Join(errs...)
}

package showcase

import "sort"

// LikedSet records which items the current viewer marked as liked.
// It is never written back onto items.
type LikedSet struct {
	ids map[string]struct{}
}

// NewLikedSet constructs an empty set.
func NewLikedSet() *LikedSet {
	return &LikedSet{ids: make(map[string]struct{})}
}

// Set inserts or removes id.
func (s *LikedSet) Set(id string, liked bool) {
	if liked {
		s.ids[id] = struct{}{}
		return
	}
	delete(s.ids, id)
}

// Has reports membership.
func (s *LikedSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of liked items.
func (s *LikedSet) Len() int {
	return len(s.ids)
}

// IDs returns a sorted snapshot of the set.
func (s *LikedSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// DisplayLikes returns the like counter as shown to the viewer: the seed value plus
// one when the viewer liked the item.
func DisplayLikes(it Item, liked bool) int {
	if liked {
		return it.LikeCount + 1
	}
	return it.LikeCount
}

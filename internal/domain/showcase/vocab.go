package showcase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned for a kind outside the app/idea partition.
	ErrUnknownKind = errors.New("unknown item kind")
	// ErrUnknownCategory is returned for a category outside the closed vocabulary.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownPlatform is returned for a platform outside the closed vocabulary.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Kind partitions the collection into finished apps and ideas.
type Kind string

const (
	KindApp  Kind = "app"
	KindIdea Kind = "idea"
)

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindApp:
		return KindApp, nil
	case KindIdea:
		return KindIdea, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Plural returns the label used in feed messages ("apps", "ideas").
func (k Kind) Plural() string {
	if k == KindIdea {
		return "ideas"
	}
	return "apps"
}

// Other returns the opposite side of the partition.
func (k Kind) Other() Kind {
	if k == KindIdea {
		return KindApp
	}
	return KindIdea
}

// Category is a closed-vocabulary tag used for filtering.
type Category string

const (
	CategoryAll            Category = "All"
	CategoryAI             Category = "AI"
	CategoryProductivity   Category = "Productivity"
	CategoryDesign         Category = "Design"
	CategoryHealth         Category = "Health"
	CategoryFinance        Category = "Finance"
	CategoryEducation      Category = "Education"
	CategoryEntertainment  Category = "Entertainment"
	CategoryDeveloperTools Category = "Developer Tools"
)

var categories = []Category{
	CategoryAll,
	CategoryAI,
	CategoryProductivity,
	CategoryDesign,
	CategoryHealth,
	CategoryFinance,
	CategoryEducation,
	CategoryEntertainment,
	CategoryDeveloperTools,
}

// Categories returns the filter vocabulary in display order, starting with All.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ParseCategory matches s case-insensitively against the vocabulary.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// NextCategory cycles through the vocabulary, wrapping around in either direction.
func NextCategory(current Category, step int) Category {
	idx := 0
	for i, c := range categories {
		if c == current {
			idx = i
			break
		}
	}
	n := len(categories)
	return categories[((idx+step)%n+n)%n]
}

// Platform is a closed-vocabulary delivery platform.
type Platform string

const (
	PlatformWeb Platform = "Web App"
	PlatformIOS Platform = "iOS"
)

var platforms = []Platform{PlatformWeb, PlatformIOS}

// Platforms returns the platform vocabulary.
func Platforms() []Platform {
	return append([]Platform(nil), platforms...)
}

// ParsePlatform matches s case-insensitively against the vocabulary.
func ParsePlatform(s string) (Platform, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range platforms {
		if strings.EqualFold(string(p), trimmed) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

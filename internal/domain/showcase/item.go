// Package showcase defines the catalog models shown in the gallery.
package showcase

import (
	"slices"
	"time"
)

// Item represents a single cataloged app or idea.
type Item struct {
	ID               string     `yaml:"id" json:"id"`
	Kind             Kind       `yaml:"type" json:"type"`
	Name             string     `yaml:"name" json:"name"`
	DeveloperName    string     `yaml:"developer_name" json:"developer_name"`
	Description      string     `yaml:"description" json:"description"`
	Categories       []Category `yaml:"categories" json:"categories"`
	Platforms        []Platform `yaml:"platforms" json:"platforms"`
	TargetAudience   string     `yaml:"target_audience" json:"target_audience"`
	ScaleInfo        string     `yaml:"scale_info" json:"scale_info"`
	HeroImageURL     string     `yaml:"hero_image_url" json:"hero_image_url"`
	GalleryImageURLs []string   `yaml:"gallery_image_urls" json:"gallery_image_urls"`
	AppLink          string     `yaml:"app_link,omitempty" json:"app_link,omitempty"`
	IsPublished      bool       `yaml:"is_published" json:"is_published"`
	IsFeatured       bool       `yaml:"is_featured" json:"is_featured"`
	ViewCount        int        `yaml:"view_count" json:"view_count"`
	LikeCount        int        `yaml:"like_count" json:"like_count"`
	InterestCount    int        `yaml:"interest_count" json:"interest_count"`
	CreatedAt        time.Time  `yaml:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `yaml:"updated_at" json:"updated_at"`

	// Idea-only fields.
	Problem  string `yaml:"problem,omitempty" json:"problem,omitempty"`
	Solution string `yaml:"solution,omitempty" json:"solution,omitempty"`

	Accolades []string `yaml:"accolades,omitempty" json:"accolades,omitempty"`
}

// PrimaryCategory returns the first category tag, the one shown on cards.
func (i Item) PrimaryCategory() Category {
	if len(i.Categories) == 0 {
		return ""
	}
	return i.Categories[0]
}

// HasCategory reports whether the item is tagged with category.
func (i Item) HasCategory(category Category) bool {
	return slices.Contains(i.Categories, category)
}

// HasAccolades reports whether the item carries at least one accolade.
func (i Item) HasAccolades() bool {
	return len(i.Accolades) > 0
}

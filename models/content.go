package models

import "time"

// SiteContent is a single key/value row of singleton site copy
// (headlines, contact info, logo URL, homepage section layout JSON).
type SiteContent struct {
	Key   string `json:"content_key" db:"content_key"`
	Value string `json:"content_value" db:"content_value"`
}

// SiteContentKeys is the fixed set of editable copy keys. The bulk
// content update iterates exactly this list.
var SiteContentKeys = []string{
	"hero_headline", "hero_subheadline",
	"about_title", "about_p1", "about_p2", "about_p3",
	"contact_email", "contact_phone", "contact_address_line1", "contact_address_line2",
	"whatsapp_number", "favicon_url", "header_logo_url",
}

const (
	ContentKeyHomepageSections = "homepage_sections"
	ContentKeyHeroImageURL     = "hero_image_url" // legacy single hero image
)

// Section is one entry of the homepage layout stored as a JSON array
// under the homepage_sections content key.
type Section struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
}

type HeroSlide struct {
	ID           string    `json:"id" db:"id"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Headline     string    `json:"headline,omitempty" db:"headline"`
	Subheadline  string    `json:"subheadline,omitempty" db:"subheadline"`
	CTAText      string    `json:"cta_text,omitempty" db:"cta_text"`
	CTAURL       string    `json:"cta_url,omitempty" db:"cta_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type SearchResult struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

package model

import "time"

// Page slugs used by the site. Pages are singletons upserted by slug.
const (
	PageHero    = "hero"
	PageAbout   = "about"
	PageContact = "contact"
)

type Page struct {
	Slug      string    `db:"slug"       json:"slug"`
	Heading   string    `db:"heading"    json:"heading"`
	Body      string    `db:"body"       json:"body"`
	ImageURL  *string   `db:"image_url"  json:"image_url,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// KnownPageSlug reports whether slug is one of the editable site pages.
func KnownPageSlug(slug string) bool {
	switch slug {
	case PageHero, PageAbout, PageContact:
		return true
	}
	return false
}

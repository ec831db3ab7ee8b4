package model

import "time"

// PressKitLink is a download/external link shown on the press page
// (one-sheet PDF, hi-res photos, logos). No manual ordering here.
type PressKitLink struct {
	ID        int       `db:"id"         json:"id"`
	Label     string    `db:"label"      json:"label"`
	URL       string    `db:"url"        json:"url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PressRelease has no sort_order; the display order is
// featured desc, date desc, created_at desc.
type PressRelease struct {
	ID        int       `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Body      string    `db:"body"       json:"body"`
	SourceURL *string   `db:"source_url" json:"source_url,omitempty"`
	Date      time.Time `db:"date"       json:"date"`
	Featured  bool      `db:"featured"   json:"featured"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

package model

import "time"

type GalleryItem struct {
	ID        int       `db:"id"         json:"id"`
	Title     *string   `db:"title"      json:"title,omitempty"`
	ImageURL  string    `db:"image_url"  json:"image_url"`
	AltText   *string   `db:"alt_text"   json:"alt_text,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

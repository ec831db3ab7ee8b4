package model

import "time"

type Video struct {
	ID          int       `db:"id"          json:"id"`
	Title       string    `db:"title"       json:"title"`
	EmbedURL    string    `db:"embed_url"   json:"embed_url"`
	Description *string   `db:"description" json:"description,omitempty"`
	SortOrder   int       `db:"sort_order"  json:"sort_order"`
	CreatedBy   int       `db:"created_by"  json:"created_by"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
}

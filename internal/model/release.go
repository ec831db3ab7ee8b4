package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// StreamingLink points a release at one streaming platform (Spotify,
// Apple Music, Bandcamp, ...). Entries are validated at the API boundary;
// anything stored here is well-formed.
type StreamingLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// StreamingLinks is stored as a jsonb column.
type StreamingLinks []StreamingLink

func (l StreamingLinks) Value() (driver.Value, error) {
	if l == nil {
		l = StreamingLinks{}
	}
	return json.Marshal(l)
}

func (l *StreamingLinks) Scan(src any) error {
	if src == nil {
		*l = StreamingLinks{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("streaming_links: cannot scan %T", src)
	}
	return json.Unmarshal(raw, l)
}

type Release struct {
	ID          int     `db:"id"           json:"id"`
	Title       string  `db:"title"        json:"title"`
	Slug        string  `db:"slug"         json:"slug"`
	Description *string `db:"description"  json:"description,omitempty"`
	CoverURL    *string `db:"cover_url"    json:"cover_url,omitempty"`

	// ReleaseDate is date-only, normalized to midnight UTC. ReleaseAt is
	// the resolved absolute instant used for all "is it live yet"
	// comparisons; it is derived, never entered directly.
	ReleaseDate *time.Time `db:"release_date" json:"release_date,omitempty"`
	ReleaseTime *string    `db:"release_time" json:"release_time,omitempty"`
	TimeZone    *string    `db:"time_zone"    json:"time_zone,omitempty"`
	ReleaseAt   *time.Time `db:"release_at"   json:"release_at,omitempty"`
	ComingSoon  bool       `db:"coming_soon"  json:"coming_soon"`

	Tags           pq.StringArray `db:"tags"            json:"tags"`
	StreamingLinks StreamingLinks `db:"streaming_links" json:"streaming_links"`

	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

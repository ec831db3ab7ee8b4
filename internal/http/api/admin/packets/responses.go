package packets

import "github.com/coh-music/backend/internal/model"

type ReleaseResponse struct {
	ID             int                  `json:"id"`
	Title          string               `json:"title"`
	Slug           string               `json:"slug"`
	Description    *string              `json:"description,omitempty"`
	CoverURL       *string              `json:"cover_url,omitempty"`
	ReleaseDate    *string              `json:"release_date,omitempty"` // "YYYY-MM-DD"
	ReleaseTime    *string              `json:"release_time,omitempty"`
	TimeZone       *string              `json:"time_zone,omitempty"`
	ReleaseAt      *string              `json:"release_at,omitempty"` // RFC3339
	ComingSoon     bool                 `json:"coming_soon"`
	Tags           []string             `json:"tags"`
	StreamingLinks model.StreamingLinks `json:"streaming_links"`
	SortOrder      int                  `json:"sort_order"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

type GalleryItemResponse struct {
	ID        int     `json:"id"`
	Title     *string `json:"title,omitempty"`
	ImageURL  string  `json:"image_url"`
	AltText   *string `json:"alt_text,omitempty"`
	SortOrder int     `json:"sort_order"`
	CreatedAt string  `json:"created_at"`
}

type VideoResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	EmbedURL    string  `json:"embed_url"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
	CreatedAt   string  `json:"created_at"`
}

type PressKitLinkResponse struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

type PressReleaseResponse struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	SourceURL *string `json:"source_url,omitempty"`
	Date      string  `json:"date"` // "YYYY-MM-DD"
	Featured  bool    `json:"featured"`
	CreatedAt string  `json:"created_at"`
}

type PageResponse struct {
	Slug      string  `json:"slug"`
	Heading   string  `json:"heading"`
	Body      string  `json:"body"`
	ImageURL  *string `json:"image_url,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

type SubscriberResponse struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type ProfileResponse struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

package packets

import "github.com/coh-music/backend/internal/model"

// ReleaseResponse is the public catalog entry. ComingSoon is computed
// at read time from the stored flag and the resolved instant, so the
// badge disappears on its own once the release window opens.
type ReleaseResponse struct {
	ID             int                  `json:"id"`
	Title          string               `json:"title"`
	Slug           string               `json:"slug"`
	Description    *string              `json:"description,omitempty"`
	CoverURL       *string              `json:"cover_url,omitempty"`
	ReleaseDate    *string              `json:"release_date,omitempty"`
	ReleaseAt      *string              `json:"release_at,omitempty"`
	ComingSoon     bool                 `json:"coming_soon"`
	Tags           []string             `json:"tags"`
	StreamingLinks model.StreamingLinks `json:"streaming_links"`
}

type GalleryItemResponse struct {
	ID       int     `json:"id"`
	Title    *string `json:"title,omitempty"`
	ImageURL string  `json:"image_url"`
	AltText  *string `json:"alt_text,omitempty"`
}

type VideoResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	EmbedURL    string  `json:"embed_url"`
	Description *string `json:"description,omitempty"`
}

type PressKitLinkResponse struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type PressReleaseResponse struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	SourceURL *string `json:"source_url,omitempty"`
	Date      string  `json:"date"`
	Featured  bool    `json:"featured"`
}

// PressResponse bundles everything the press page renders.
type PressResponse struct {
	KitLinks []PressKitLinkResponse `json:"kit_links"`
	Releases []PressReleaseResponse `json:"releases"`
}

type PageResponse struct {
	Slug     string  `json:"slug"`
	Heading  string  `json:"heading"`
	Body     string  `json:"body"`
	ImageURL *string `json:"image_url,omitempty"`
}

package packets

// body for registering
type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

// body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// StreamingLinkPayload is the loosely shaped wire form; entries are
// validated and malformed ones discarded before anything is stored.
type StreamingLinkPayload struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// CreateReleaseRequest carries raw scheduling inputs; release_at and
// the coming_soon default are derived server-side, never submitted.
type CreateReleaseRequest struct {
	Title          string                 `json:"title" binding:"required"`
	Slug           *string                `json:"slug"`
	Description    *string                `json:"description"`
	CoverURL       *string                `json:"cover_url" binding:"omitempty,url"`
	ReleaseDate    *string                `json:"release_date"` // "YYYY-MM-DD"
	ReleaseTime    *string                `json:"release_time"` // "HH:MM"
	TimeZone       *string                `json:"time_zone"`    // IANA name
	ComingSoon     *bool                  `json:"coming_soon"`
	Tags           []string               `json:"tags"`
	StreamingLinks []StreamingLinkPayload `json:"streaming_links"`
}

// UpdateReleaseRequest resubmits the full scheduling input set so the
// derived values are always recomputed together.
type UpdateReleaseRequest struct {
	Title          *string                `json:"title"`
	Slug           *string                `json:"slug"`
	Description    *string                `json:"description"`
	CoverURL       *string                `json:"cover_url" binding:"omitempty,url"`
	ReleaseDate    *string                `json:"release_date"`
	ReleaseTime    *string                `json:"release_time"`
	TimeZone       *string                `json:"time_zone"`
	ComingSoon     *bool                  `json:"coming_soon"`
	Tags           []string               `json:"tags"`
	StreamingLinks []StreamingLinkPayload `json:"streaming_links"`
}

// ReorderRequest is the full list of collection IDs in desired order,
// sent after a drag-and-drop gesture.
type ReorderRequest struct {
	IDs []int `json:"ids" binding:"required"`
}

type UpdateGalleryItemRequest struct {
	Title   *string `json:"title"`
	AltText *string `json:"alt_text"`
}

type CreateVideoRequest struct {
	Title       string  `json:"title" binding:"required"`
	EmbedURL    string  `json:"embed_url" binding:"required,url"`
	Description *string `json:"description"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	EmbedURL    *string `json:"embed_url" binding:"omitempty,url"`
	Description *string `json:"description"`
}

type CreatePressKitLinkRequest struct {
	Label string `json:"label" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

type UpdatePressKitLinkRequest struct {
	Label *string `json:"label"`
	URL   *string `json:"url" binding:"omitempty,url"`
}

type CreatePressReleaseRequest struct {
	Title     string  `json:"title" binding:"required"`
	Body      string  `json:"body" binding:"required"`
	SourceURL *string `json:"source_url" binding:"omitempty,url"`
	Date      string  `json:"date" binding:"required"` // "YYYY-MM-DD"
	Featured  bool    `json:"featured"`
}

type UpdatePressReleaseRequest struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	SourceURL *string `json:"source_url" binding:"omitempty,url"`
	Date      *string `json:"date"`
	Featured  *bool   `json:"featured"`
}

type UpdatePageRequest struct {
	Heading  string  `json:"heading" binding:"required"`
	Body     string  `json:"body" binding:"required"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
}

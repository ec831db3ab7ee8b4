// exposes the Store interface that endpoint controllers are given
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coh-music/backend/internal/model"
)

// ReleaseTimingParams carries the resolved scheduling values for a
// release. The whole struct is written on every create/update so the
// derived columns can never drift from their source inputs.
type ReleaseTimingParams struct {
	ReleaseDate *time.Time
	ReleaseTime *string
	TimeZone    *string
	ReleaseAt   *time.Time
	ComingSoon  bool
}

type CreateReleaseParams struct {
	Title          string
	Slug           string
	Description    *string
	CoverURL       *string
	Timing         ReleaseTimingParams
	Tags           []string
	StreamingLinks model.StreamingLinks
	CreatedBy      int
}

// UpdateReleaseParams: nil pointer fields are left unchanged, except
// Timing which is always rewritten in full.
type UpdateReleaseParams struct {
	Title          *string
	Slug           *string
	Description    *string
	CoverURL       *string
	Timing         ReleaseTimingParams
	Tags           []string
	StreamingLinks model.StreamingLinks
}

type CreatePressReleaseParams struct {
	Title     string
	Body      string
	SourceURL *string
	Date      time.Time
	Featured  bool
	CreatedBy int
}

type UpdatePressReleaseParams struct {
	Title     *string
	Body      *string
	SourceURL *string
	Date      *time.Time
	Featured  *bool
}

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// release functions
	CreateRelease(p CreateReleaseParams) (model.Release, error)
	GetReleaseByID(id int) (model.Release, error)
	GetReleaseBySlug(slug string) (model.Release, error)
	ListReleases() ([]model.Release, error)
	UpdateRelease(id int, p UpdateReleaseParams) error
	DeleteRelease(id int) error
	ReorderReleases(orderedIDs []int) error

	// gallery functions
	CreateGalleryItem(title *string, imageURL string, altText *string, createdBy int) (model.GalleryItem, error)
	GetGalleryItemByID(id int) (model.GalleryItem, error)
	ListGallery() ([]model.GalleryItem, error)
	UpdateGalleryItem(id int, title, altText *string) error
	DeleteGalleryItem(id int) error
	ReorderGallery(orderedIDs []int) error

	// video functions
	CreateVideo(title, embedURL string, description *string, createdBy int) (model.Video, error)
	GetVideoByID(id int) (model.Video, error)
	ListVideos() ([]model.Video, error)
	UpdateVideo(id int, title, embedURL, description *string) error
	DeleteVideo(id int) error
	ReorderVideos(orderedIDs []int) error

	// press functions
	CreatePressKitLink(label, url string) (model.PressKitLink, error)
	ListPressKitLinks() ([]model.PressKitLink, error)
	UpdatePressKitLink(id int, label, url *string) error
	DeletePressKitLink(id int) error
	CreatePressRelease(p CreatePressReleaseParams) (model.PressRelease, error)
	GetPressReleaseByID(id int) (model.PressRelease, error)
	ListPressReleases() ([]model.PressRelease, error)
	UpdatePressRelease(id int, p UpdatePressReleaseParams) error
	DeletePressRelease(id int) error

	// page functions
	GetPage(slug string) (model.Page, error)
	UpsertPage(slug, heading, body string, imageURL *string) (model.Page, error)

	// subscriber functions
	CreateSubscriber(email, unsubscribeToken string) (model.Subscriber, error)
	ListSubscribers() ([]model.Subscriber, error)
	DeleteSubscriberByToken(token string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}

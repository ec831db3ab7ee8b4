package endpoints

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/public/packets"
	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/redis"
	rls "github.com/coh-music/backend/internal/release"
)

type SiteController struct {
	store db.Store
}

func newSiteController(store db.Store) *SiteController {
	return &SiteController{store: store}
}

// SiteModule mounts the unauthenticated read API plus the newsletter
// signup. The coming-soon state in release responses is evaluated
// against the server clock on every request; clients re-poll to pick
// up the flip without a reload.
func SiteModule(store db.Store) api.Module {
	ctl := newSiteController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/releases", ctl.listReleases)
		c.PUBLIC_GET("/releases/:slug", ctl.getRelease)
		c.PUBLIC_GET("/gallery", ctl.listGallery)
		c.PUBLIC_GET("/videos", ctl.listVideos)
		c.PUBLIC_GET("/press", ctl.getPress)
		c.PUBLIC_GET("/pages/:slug", ctl.getPage)
		c.PUBLIC_POST("/subscribe", ctl.subscribe)
		c.PUBLIC_GET("/unsubscribe/:token", ctl.unsubscribe)
	})
}

// etagFor derives a weak content hash for If-None-Match handling.
func etagFor(payload any) string {
	b, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}

// serveCached sets the ETag header and short-circuits to 304 when the
// client already has the current payload. The comparison always uses
// the hash of the payload being served: release responses change when a
// release instant passes, with no admin write involved, so a cached tag
// can never be trusted for matching. Redis only mirrors the last
// published tag (skipping redundant writes); admin writes drop the key.
// Returns true when 304 was written.
func (sc *SiteController) serveCached(ctx *gin.Context, collection string, payload any) bool {
	etag := etagFor(payload)
	if etag == "" {
		return false
	}
	if redis.GetCollectionETag(ctx.Request.Context(), collection) != etag {
		redis.SetCollectionETag(ctx.Request.Context(), collection, etag)
	}
	ctx.Header("ETag", etag)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return true
	}
	return false
}

func (sc *SiteController) mapRelease(r model.Release, now time.Time) packets.ReleaseResponse {
	resp := packets.ReleaseResponse{
		ID:             r.ID,
		Title:          r.Title,
		Slug:           r.Slug,
		Description:    r.Description,
		CoverURL:       r.CoverURL,
		ComingSoon:     rls.IsComingSoon(r.ComingSoon, r.ReleaseAt, r.ReleaseDate, now),
		Tags:           r.Tags,
		StreamingLinks: r.StreamingLinks,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.StreamingLinks == nil {
		resp.StreamingLinks = model.StreamingLinks{}
	}
	if r.ReleaseDate != nil {
		d := r.ReleaseDate.Format("2006-01-02")
		resp.ReleaseDate = &d
	}
	if r.ReleaseAt != nil {
		at := r.ReleaseAt.Format(time.RFC3339)
		resp.ReleaseAt = &at
	}
	return resp
}

func (sc *SiteController) listReleases(ctx *gin.Context) (any, *api.APIError) {
	all, err := sc.store.ListReleases()
	if err != nil {
		log.Error().Err(err).Msg("[public] releases: could not list releases")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list releases"}
	}

	now := time.Now()
	out := make([]packets.ReleaseResponse, 0, len(all))
	for _, r := range all {
		out = append(out, sc.mapRelease(r, now))
	}

	if sc.serveCached(ctx, "releases", out) {
		return nil, nil
	}
	return out, nil
}

func (sc *SiteController) getRelease(ctx *gin.Context) (any, *api.APIError) {
	r, err := sc.store.GetReleaseBySlug(ctx.Param("slug"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return sc.mapRelease(r, time.Now()), nil
}

func (sc *SiteController) listGallery(ctx *gin.Context) (any, *api.APIError) {
	all, err := sc.store.ListGallery()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list gallery"}
	}
	out := make([]packets.GalleryItemResponse, 0, len(all))
	for _, g := range all {
		out = append(out, packets.GalleryItemResponse{
			ID:       g.ID,
			Title:    g.Title,
			ImageURL: g.ImageURL,
			AltText:  g.AltText,
		})
	}
	if sc.serveCached(ctx, "gallery", out) {
		return nil, nil
	}
	return out, nil
}

func (sc *SiteController) listVideos(ctx *gin.Context) (any, *api.APIError) {
	all, err := sc.store.ListVideos()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list videos"}
	}
	out := make([]packets.VideoResponse, 0, len(all))
	for _, v := range all {
		out = append(out, packets.VideoResponse{
			ID:          v.ID,
			Title:       v.Title,
			EmbedURL:    v.EmbedURL,
			Description: v.Description,
		})
	}
	if sc.serveCached(ctx, "videos", out) {
		return nil, nil
	}
	return out, nil
}

func (sc *SiteController) getPress(ctx *gin.Context) (any, *api.APIError) {
	links, err := sc.store.ListPressKitLinks()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load press kit"}
	}
	rels, err := sc.store.ListPressReleases()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load press releases"}
	}

	out := packets.PressResponse{
		KitLinks: make([]packets.PressKitLinkResponse, 0, len(links)),
		Releases: make([]packets.PressReleaseResponse, 0, len(rels)),
	}
	for _, l := range links {
		out.KitLinks = append(out.KitLinks, packets.PressKitLinkResponse{Label: l.Label, URL: l.URL})
	}
	for _, pr := range rels {
		out.Releases = append(out.Releases, packets.PressReleaseResponse{
			ID:        pr.ID,
			Title:     pr.Title,
			Body:      pr.Body,
			SourceURL: pr.SourceURL,
			Date:      pr.Date.Format("2006-01-02"),
			Featured:  pr.Featured,
		})
	}
	if sc.serveCached(ctx, "press", out) {
		return nil, nil
	}
	return out, nil
}

func (sc *SiteController) getPage(ctx *gin.Context) (any, *api.APIError) {
	slug := ctx.Param("slug")
	if !model.KnownPageSlug(slug) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown page"}
	}
	p, err := sc.store.GetPage(slug)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return packets.PageResponse{
		Slug:     p.Slug,
		Heading:  p.Heading,
		Body:     p.Body,
		ImageURL: p.ImageURL,
	}, nil
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/public/subscribe — signup is idempotent: re-subscribing an
// existing address reports success without creating a second row.
func (sc *SiteController) subscribe(ctx *gin.Context) (any, *api.APIError) {
	var req subscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	_, err := sc.store.CreateSubscriber(req.Email, uuid.NewString())
	if err != nil && !errors.Is(err, db.ErrDuplicateEmail) {
		log.Error().Err(err).Msg("[public] subscribe: could not create subscriber")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not subscribe"}
	}

	return gin.H{"subscribed": true}, nil
}

func (sc *SiteController) unsubscribe(ctx *gin.Context) (any, *api.APIError) {
	if err := sc.store.DeleteSubscriberByToken(ctx.Param("token")); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown unsubscribe token"}
	}
	return gin.H{"unsubscribed": true}, nil
}

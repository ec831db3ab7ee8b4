package endpoints

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/admin/packets"
	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/ordering"
	rls "github.com/coh-music/backend/internal/release"
	"github.com/coh-music/backend/internal/redis"
)

type ReleaseController struct {
	store db.Store
}

func newReleaseController(store db.Store) *ReleaseController {
	return &ReleaseController{store: store}
}

// ReleaseModule mounts all authenticated /releases endpoints. PUT on
// the collection persists a drag-reorder batch.
func ReleaseModule(store db.Store) api.Module {
	ctl := newReleaseController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/releases", ctl.listReleases)
		c.POST("/releases", ctl.createRelease)
		c.PUT("/releases", ctl.reorderReleases)
		c.GET("/releases/:id", ctl.getRelease)
		c.PUT("/releases/:id", ctl.updateRelease)
		c.DELETE("/releases/:id", ctl.deleteRelease)
	})
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// timingParams pairs the raw inputs with their resolved values so the
// stored columns always move together.
func timingParams(date, clock, zone *string, resolved rls.Resolved) db.ReleaseTimingParams {
	p := db.ReleaseTimingParams{
		ReleaseDate: resolved.ReleaseDate,
		ReleaseAt:   resolved.ReleaseAt,
		ComingSoon:  resolved.ComingSoon,
	}
	if resolved.ReleaseDate != nil {
		if c := strings.TrimSpace(strOrEmpty(clock)); c != "" {
			p.ReleaseTime = &c
		}
		if z := strings.TrimSpace(strOrEmpty(zone)); z != "" {
			p.TimeZone = &z
		}
	}
	return p
}

func mapRelease(r model.Release) packets.ReleaseResponse {
	resp := packets.ReleaseResponse{
		ID:             r.ID,
		Title:          r.Title,
		Slug:           r.Slug,
		Description:    r.Description,
		CoverURL:       r.CoverURL,
		ReleaseTime:    r.ReleaseTime,
		TimeZone:       r.TimeZone,
		ComingSoon:     r.ComingSoon,
		Tags:           r.Tags,
		StreamingLinks: r.StreamingLinks,
		SortOrder:      r.SortOrder,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
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

func (rc *ReleaseController) listReleases(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := rc.store.ListReleases()
	if err != nil {
		log.Error().Err(err).Msg("[releases] list: could not list releases")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list releases"}
	}

	out := make([]packets.ReleaseResponse, 0, len(all))
	for _, r := range all {
		out = append(out, mapRelease(r))
	}
	return out, nil
}

func (rc *ReleaseController) createRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.CreateReleaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("[releases] create: bad request")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	resolved, err := rls.Resolve(rls.Input{
		ReleaseDate: strOrEmpty(req.ReleaseDate),
		ReleaseTime: strOrEmpty(req.ReleaseTime),
		TimeZone:    strOrEmpty(req.TimeZone),
		ComingSoon:  req.ComingSoon,
	}, time.Now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	slug := strings.TrimSpace(strOrEmpty(req.Slug))
	if slug == "" {
		slug = slugify(req.Title)
	}

	created, err := rc.store.CreateRelease(db.CreateReleaseParams{
		Title:          req.Title,
		Slug:           slug,
		Description:    req.Description,
		CoverURL:       req.CoverURL,
		Timing:         timingParams(req.ReleaseDate, req.ReleaseTime, req.TimeZone, resolved),
		Tags:           packets.SanitizeTags(req.Tags),
		StreamingLinks: packets.SanitizeStreamingLinks(req.StreamingLinks),
		CreatedBy:      user.ID,
	})
	if err != nil {
		log.Error().Err(err).Msg("[releases] create: could not create release")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create release"}
	}

	go redis.InvalidateCollection(context.Background(), "releases")
	return mapRelease(created), nil
}

func (rc *ReleaseController) getRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	r, err := rc.store.GetReleaseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return mapRelease(r), nil
}

// PUT /api/admin/releases/:id — scheduling fields are re-resolved as a
// unit on every update; a partial patch of date/time/zone is not
// possible through this endpoint.
func (rc *ReleaseController) updateRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := rc.store.GetReleaseByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	var req packets.UpdateReleaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	resolved, err := rls.Resolve(rls.Input{
		ReleaseDate: strOrEmpty(req.ReleaseDate),
		ReleaseTime: strOrEmpty(req.ReleaseTime),
		TimeZone:    strOrEmpty(req.TimeZone),
		ComingSoon:  req.ComingSoon,
	}, time.Now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	params := db.UpdateReleaseParams{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		Timing:      timingParams(req.ReleaseDate, req.ReleaseTime, req.TimeZone, resolved),
	}
	if req.Tags != nil {
		params.Tags = packets.SanitizeTags(req.Tags)
	}
	if req.StreamingLinks != nil {
		params.StreamingLinks = packets.SanitizeStreamingLinks(req.StreamingLinks)
	}

	if err := rc.store.UpdateRelease(id, params); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update release"}
	}

	go redis.InvalidateCollection(context.Background(), "releases")

	updated, err := rc.store.GetReleaseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated release"}
	}
	return mapRelease(updated), nil
}

func (rc *ReleaseController) deleteRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := rc.store.DeleteRelease(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete release"}
	}
	go redis.InvalidateCollection(context.Background(), "releases")
	return gin.H{"deleted": id}, nil
}

// PUT /api/admin/releases — persists a drag-reorder batch. The body
// must list every release ID exactly once; a stale batch (unknown or
// missing ID) is rejected whole so the client can roll back its
// optimistic reorder.
func (rc *ReleaseController) reorderReleases(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := rc.store.ReorderReleases(req.IDs); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: err.Error()}
		}
		log.Error().Err(err).Msg("[releases] reorder: could not persist batch")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reorder releases"}
	}

	go redis.InvalidateCollection(context.Background(), "releases")
	return gin.H{"reordered": len(req.IDs)}, nil
}

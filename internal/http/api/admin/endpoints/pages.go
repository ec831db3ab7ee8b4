package endpoints

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/admin/packets"
	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/redis"
)

type PageController struct {
	store db.Store
}

func newPageController(store db.Store) *PageController {
	return &PageController{store: store}
}

// PageModule mounts the hero/about/contact singleton page endpoints.
func PageModule(store db.Store) api.Module {
	ctl := newPageController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/pages/:slug", ctl.getPage)
		c.PUT("/pages/:slug", ctl.upsertPage)
	})
}

func mapPage(p model.Page) packets.PageResponse {
	return packets.PageResponse{
		Slug:      p.Slug,
		Heading:   p.Heading,
		Body:      p.Body,
		ImageURL:  p.ImageURL,
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func (pc *PageController) getPage(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	slug := ctx.Param("slug")
	if !model.KnownPageSlug(slug) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown page"}
	}
	p, err := pc.store.GetPage(slug)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return mapPage(p), nil
}

func (pc *PageController) upsertPage(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	slug := ctx.Param("slug")
	if !model.KnownPageSlug(slug) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown page"}
	}

	var req packets.UpdatePageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	p, err := pc.store.UpsertPage(slug, req.Heading, req.Body, req.ImageURL)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save page"}
	}

	go redis.InvalidateCollection(context.Background(), "pages")
	return mapPage(p), nil
}

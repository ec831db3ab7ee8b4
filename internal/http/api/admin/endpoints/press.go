package endpoints

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/admin/packets"
	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/redis"
)

type PressController struct {
	store db.Store
}

func newPressController(store db.Store) *PressController {
	return &PressController{store: store}
}

// PressModule mounts authenticated press kit and press release
// endpoints. Neither collection has manual ordering.
func PressModule(store db.Store) api.Module {
	ctl := newPressController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/press/kit", ctl.listKitLinks)
		c.POST("/press/kit", ctl.createKitLink)
		c.PUT("/press/kit/:id", ctl.updateKitLink)
		c.DELETE("/press/kit/:id", ctl.deleteKitLink)

		c.GET("/press/releases", ctl.listPressReleases)
		c.POST("/press/releases", ctl.createPressRelease)
		c.GET("/press/releases/:id", ctl.getPressRelease)
		c.PUT("/press/releases/:id", ctl.updatePressRelease)
		c.DELETE("/press/releases/:id", ctl.deletePressRelease)
	})
}

func mapKitLink(l model.PressKitLink) packets.PressKitLinkResponse {
	return packets.PressKitLinkResponse{
		ID:        l.ID,
		Label:     l.Label,
		URL:       l.URL,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func mapPressRelease(pr model.PressRelease) packets.PressReleaseResponse {
	return packets.PressReleaseResponse{
		ID:        pr.ID,
		Title:     pr.Title,
		Body:      pr.Body,
		SourceURL: pr.SourceURL,
		Date:      pr.Date.Format("2006-01-02"),
		Featured:  pr.Featured,
		CreatedAt: pr.CreatedAt.Format(time.RFC3339),
	}
}

func (pc *PressController) listKitLinks(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := pc.store.ListPressKitLinks()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list press kit links"}
	}
	out := make([]packets.PressKitLinkResponse, 0, len(all))
	for _, l := range all {
		out = append(out, mapKitLink(l))
	}
	return out, nil
}

func (pc *PressController) createKitLink(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.CreatePressKitLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	l, err := pc.store.CreatePressKitLink(req.Label, req.URL)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create press kit link"}
	}
	go redis.InvalidateCollection(context.Background(), "press")
	return mapKitLink(l), nil
}

func (pc *PressController) updateKitLink(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var req packets.UpdatePressKitLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := pc.store.UpdatePressKitLink(id, req.Label, req.URL); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update press kit link"}
	}
	go redis.InvalidateCollection(context.Background(), "press")
	return gin.H{"updated": id}, nil
}

func (pc *PressController) deleteKitLink(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := pc.store.DeletePressKitLink(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete press kit link"}
	}
	go redis.InvalidateCollection(context.Background(), "press")
	return gin.H{"deleted": id}, nil
}

func (pc *PressController) listPressReleases(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := pc.store.ListPressReleases()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list press releases"}
	}
	out := make([]packets.PressReleaseResponse, 0, len(all))
	for _, pr := range all {
		out = append(out, mapPressRelease(pr))
	}
	return out, nil
}

func (pc *PressController) createPressRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.CreatePressReleaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: "invalid date, expected YYYY-MM-DD"}
	}

	pr, err := pc.store.CreatePressRelease(db.CreatePressReleaseParams{
		Title:     req.Title,
		Body:      req.Body,
		SourceURL: req.SourceURL,
		Date:      date,
		Featured:  req.Featured,
		CreatedBy: user.ID,
	})
	if err != nil {
		log.Error().Err(err).Msg("[press] create: could not create press release")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create press release"}
	}

	go redis.InvalidateCollection(context.Background(), "press")
	return mapPressRelease(pr), nil
}

func (pc *PressController) getPressRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	pr, err := pc.store.GetPressReleaseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return mapPressRelease(pr), nil
}

func (pc *PressController) updatePressRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := pc.store.GetPressReleaseByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	var req packets.UpdatePressReleaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	params := db.UpdatePressReleaseParams{
		Title:     req.Title,
		Body:      req.Body,
		SourceURL: req.SourceURL,
		Featured:  req.Featured,
	}
	if req.Date != nil {
		date, derr := time.Parse("2006-01-02", *req.Date)
		if derr != nil {
			return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: "invalid date, expected YYYY-MM-DD"}
		}
		params.Date = &date
	}

	if err := pc.store.UpdatePressRelease(id, params); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update press release"}
	}

	go redis.InvalidateCollection(context.Background(), "press")

	updated, err := pc.store.GetPressReleaseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated press release"}
	}
	return mapPressRelease(updated), nil
}

func (pc *PressController) deletePressRelease(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := pc.store.DeletePressRelease(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete press release"}
	}
	go redis.InvalidateCollection(context.Background(), "press")
	return gin.H{"deleted": id}, nil
}

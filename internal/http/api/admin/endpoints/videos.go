package endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/admin/packets"
	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/ordering"
	"github.com/coh-music/backend/internal/redis"
)

type VideoController struct {
	store db.Store
}

func newVideoController(store db.Store) *VideoController {
	return &VideoController{store: store}
}

// VideoModule mounts all authenticated /videos endpoints.
func VideoModule(store db.Store) api.Module {
	ctl := newVideoController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/videos", ctl.listVideos)
		c.POST("/videos", ctl.createVideo)
		c.PUT("/videos", ctl.reorderVideos)
		c.PUT("/videos/:id", ctl.updateVideo)
		c.DELETE("/videos/:id", ctl.deleteVideo)
	})
}

func mapVideo(v model.Video) packets.VideoResponse {
	return packets.VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		EmbedURL:    v.EmbedURL,
		Description: v.Description,
		SortOrder:   v.SortOrder,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

func (vc *VideoController) listVideos(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := vc.store.ListVideos()
	if err != nil {
		log.Error().Err(err).Msg("[videos] list: could not list videos")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list videos"}
	}
	out := make([]packets.VideoResponse, 0, len(all))
	for _, v := range all {
		out = append(out, mapVideo(v))
	}
	return out, nil
}

func (vc *VideoController) createVideo(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.CreateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	v, err := vc.store.CreateVideo(req.Title, req.EmbedURL, req.Description, user.ID)
	if err != nil {
		log.Error().Err(err).Msg("[videos] create: could not create video")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create video"}
	}

	go redis.InvalidateCollection(context.Background(), "videos")
	return mapVideo(v), nil
}

func (vc *VideoController) updateVideo(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := vc.store.GetVideoByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	var req packets.UpdateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := vc.store.UpdateVideo(id, req.Title, req.EmbedURL, req.Description); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update video"}
	}

	go redis.InvalidateCollection(context.Background(), "videos")

	updated, err := vc.store.GetVideoByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated video"}
	}
	return mapVideo(updated), nil
}

func (vc *VideoController) deleteVideo(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := vc.store.DeleteVideo(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete video"}
	}
	go redis.InvalidateCollection(context.Background(), "videos")
	return gin.H{"deleted": id}, nil
}

func (vc *VideoController) reorderVideos(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := vc.store.ReorderVideos(req.IDs); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: err.Error()}
		}
		log.Error().Err(err).Msg("[videos] reorder: could not persist batch")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reorder videos"}
	}

	go redis.InvalidateCollection(context.Background(), "videos")
	return gin.H{"reordered": len(req.IDs)}, nil
}

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
	"github.com/coh-music/backend/internal/storage"
)

type GalleryController struct {
	store   db.Store
	storage storage.Storage
}

func newGalleryController(store db.Store, storageSystem storage.Storage) *GalleryController {
	return &GalleryController{store: store, storage: storageSystem}
}

// GalleryModule mounts all authenticated /gallery endpoints. Creation
// is a multipart upload; PUT on the collection persists a reorder batch.
func GalleryModule(store db.Store, storageSystem storage.Storage) api.Module {
	ctl := newGalleryController(store, storageSystem)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/gallery", ctl.listGallery)
		c.POST("/gallery", ctl.createItem)
		c.PUT("/gallery", ctl.reorderGallery)
		c.PUT("/gallery/:id", ctl.updateItem)
		c.DELETE("/gallery/:id", ctl.deleteItem)
	})
}

func mapGalleryItem(g model.GalleryItem) packets.GalleryItemResponse {
	return packets.GalleryItemResponse{
		ID:        g.ID,
		Title:     g.Title,
		ImageURL:  g.ImageURL,
		AltText:   g.AltText,
		SortOrder: g.SortOrder,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}

func (gc *GalleryController) listGallery(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := gc.store.ListGallery()
	if err != nil {
		log.Error().Err(err).Msg("[gallery] list: could not list gallery")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list gallery"}
	}
	out := make([]packets.GalleryItemResponse, 0, len(all))
	for _, g := range all {
		out = append(out, mapGalleryItem(g))
	}
	return out, nil
}

// POST /api/admin/gallery — multipart form: image (file), title, alt_text.
func (gc *GalleryController) createItem(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		log.Warn().Err(err).Msg("[gallery] create: missing file")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "image file is required"}
	}

	var title, altText *string
	if v := ctx.PostForm("title"); v != "" {
		title = &v
	}
	if v := ctx.PostForm("alt_text"); v != "" {
		altText = &v
	}

	imageURL, err := gc.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("[gallery] create: save failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save file"}
	}

	item, err := gc.store.CreateGalleryItem(title, imageURL, altText, user.ID)
	if err != nil {
		log.Error().Err(err).Msg("[gallery] create: db create failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create gallery item"}
	}

	go redis.InvalidateCollection(context.Background(), "gallery")
	return mapGalleryItem(item), nil
}

func (gc *GalleryController) updateItem(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := gc.store.GetGalleryItemByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	var req packets.UpdateGalleryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := gc.store.UpdateGalleryItem(id, req.Title, req.AltText); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update gallery item"}
	}

	go redis.InvalidateCollection(context.Background(), "gallery")

	updated, err := gc.store.GetGalleryItemByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated item"}
	}
	return mapGalleryItem(updated), nil
}

func (gc *GalleryController) deleteItem(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := gc.store.DeleteGalleryItem(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete gallery item"}
	}
	go redis.InvalidateCollection(context.Background(), "gallery")
	return gin.H{"deleted": id}, nil
}

func (gc *GalleryController) reorderGallery(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := gc.store.ReorderGallery(req.IDs); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: err.Error()}
		}
		log.Error().Err(err).Msg("[gallery] reorder: could not persist batch")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reorder gallery"}
	}

	go redis.InvalidateCollection(context.Background(), "gallery")
	return gin.H{"reordered": len(req.IDs)}, nil
}

package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/admin/packets"
	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/storage"
)

type MediaController struct {
	storage storage.Storage
}

// MediaModule uploads standalone assets (cover art, press files) and
// returns the hosted URL for the admin UI to attach to a record.
func MediaModule(storageSystem storage.Storage) api.Module {
	ctl := &MediaController{storage: storageSystem}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/media", ctl.uploadMedia)
	})
}

// POST /api/admin/media — multipart form: file.
func (mc *MediaController) uploadMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		log.Warn().Err(err).Msg("[media] upload: missing file")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	url, err := mc.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("[media] upload: save failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save file"}
	}

	return packets.UploadResponse{URL: url}, nil
}

package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/admin/packets"
	"github.com/coh-music/backend/internal/model"
)

type SubscriberController struct {
	store db.Store
}

// SubscriberModule exposes the newsletter list to the admin dashboard.
// Signups come in through the public API.
func SubscriberModule(store db.Store) api.Module {
	ctl := &SubscriberController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/subscribers", ctl.listSubscribers)
	})
}

func (sc *SubscriberController) listSubscribers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := sc.store.ListSubscribers()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list subscribers"}
	}
	out := make([]packets.SubscriberResponse, 0, len(all))
	for _, s := range all {
		out = append(out, packets.SubscriberResponse{
			ID:        s.ID,
			Email:     s.Email,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

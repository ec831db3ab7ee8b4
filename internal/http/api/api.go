package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coh-music/backend/internal/http/middleware"
	"github.com/coh-music/backend/internal/model"
)

// APIError is the failure half of an endpoint result; handlers return
// it instead of writing to the response themselves.
type APIError struct {
	Code    int
	Message string
}

// AuthHandlerFunc is an endpoint that requires a logged-in admin.
type AuthHandlerFunc func(ctx *gin.Context, user *model.User) (any, *APIError)

// HandlerFunc is a public endpoint.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithAuth(h AuthHandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, user)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		if result == nil {
			// a handler may have set its own status (e.g. 304)
			if ctx.Writer.Status() == http.StatusOK {
				ctx.Status(http.StatusNoContent)
			}
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		if result == nil {
			if ctx.Writer.Status() == http.StatusOK {
				ctx.Status(http.StatusNoContent)
			}
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

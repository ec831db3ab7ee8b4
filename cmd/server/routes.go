package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	adminapi "github.com/coh-music/backend/internal/http/api/admin/endpoints"
	publicapi "github.com/coh-music/backend/internal/http/api/public/endpoints"
	"github.com/coh-music/backend/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, storageSystem storage.Storage) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			"If-None-Match",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"ETag",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.AuthSessionModule(env.SecretKey, store),
		adminapi.ReleaseModule(store),
		adminapi.GalleryModule(store, storageSystem),
		adminapi.VideoModule(store),
		adminapi.PressModule(store),
		adminapi.PageModule(store),
		adminapi.SubscriberModule(store),
		adminapi.MediaModule(storageSystem),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/public",
	},
		publicapi.SiteModule(store),
	)

	// Static content when media lives on local disk
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}

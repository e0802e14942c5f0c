package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sjcet-apps/billboard-core/internal/middleware"
	authmod "github.com/sjcet-apps/billboard-core/internal/modules/auth/auth"
	"github.com/sjcet-apps/billboard-core/internal/modules/auth/users"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/blocks"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/images"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/roster"
	"github.com/sjcet-apps/billboard-core/internal/modules/content/settings"
	"github.com/sjcet-apps/billboard-core/internal/modules/display/display"
	"github.com/sjcet-apps/billboard-core/internal/modules/feeds/feeds"
	"github.com/sjcet-apps/billboard-core/internal/modules/gateway/gateway"
	"github.com/sjcet-apps/billboard-core/internal/modules/system/health"
	pkgredis "github.com/sjcet-apps/billboard-core/internal/pkg/redis"
	"github.com/sjcet-apps/billboard-core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)
	editorMW := middleware.RequireEditor(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(rc.Raw()))
	// OptionalAuth must run before HTTPCache so authenticated responses are
	// never cached or served from cache.
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL: 15 * time.Second,
		SkipPaths: []string{
			"/api/v1/auth*",
			"/api/v1/users*",
			"/api/v1/gateway*",
			"/api/v1/health*",
			"/api/v1/socket.io*",
		},
	}))

	api.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"pong": true})
	})

	blockSvc := blocks.NewService(db)
	settingsSvc := settings.NewService(db)
	rosterSvc := roster.NewService(db)
	imageSvc := images.NewService(db, images.NewUploader(a.cfg.S3))
	feedSvc := feeds.NewService(a.cfg.Feeds, rc)
	a.feeds = feedSvc
	a.composer = display.NewService(blockSvc, settingsSvc, rosterSvc, imageSvc, feedSvc, a.hub, a.logger)

	authmod.NewHandler(authmod.NewService(db)).RegisterRoutes(api, authMW)
	users.NewHandler(users.NewService(db)).RegisterRoutes(api, authMW)
	blocks.NewHandler(blockSvc, a.hub, rc).RegisterRoutes(api, editorMW)
	settings.NewHandler(settingsSvc, a.hub).RegisterRoutes(api, editorMW)
	roster.NewHandler(rosterSvc, a.hub).RegisterRoutes(api, editorMW)
	images.NewHandler(imageSvc, settingsSvc, a.hub, db).RegisterRoutes(api, editorMW)
	feeds.NewHandler(feedSvc).RegisterRoutes(api)
	display.NewHandler(a.composer).RegisterRoutes(api)
	gateway.RegisterRoutes(api, a.hub)
	health.RegisterRoutes(api, db, rc, a.sched, authMW)
}

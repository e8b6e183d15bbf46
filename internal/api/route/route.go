package route

import (
	"net/http"
	"os"

	"github.com/bassista/tourdesk/internal/api/middleware"
	"github.com/bassista/tourdesk/internal/app"
	"github.com/bassista/tourdesk/internal/logger"
	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the engine serving the JSON API and the SPA.
func SetupRoutes(appCtx *app.App) *gin.Engine {
	r := gin.New()
	r.Use(middleware.HoneybadgerMiddleware(os.Getenv("HONEYBADGER_API_KEY"), os.Getenv("GO_ENV")))
	r.Use(gin.LoggerWithWriter(logger.Writer()))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(appCtx.Config.Server.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "UP",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.RequestTimeout(appCtx.Config.Server.RequestTimeout))

	NewAuthRouter(api.Group("/auth"), appCtx.Auth)

	guarded := api.Group("")
	guarded.Use(middleware.RequireSession(appCtx.Session))

	NewPaneRouter(guarded, appCtx.Dashboard)
	NewDrilldownRouter(guarded, appCtx.Dashboard)
	NewViewRouter(guarded, appCtx.Dashboard)
	NewMediaRouter(guarded, appCtx.Config.Media.MaxUploadBytes)
	NewConfigurationRouter(guarded, appCtx.Config)

	NewUIRouter(r, appCtx.Config.Misc.UIPath)
	return r
}

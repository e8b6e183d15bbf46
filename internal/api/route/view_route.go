package route

import (
	"github.com/bassista/tourdesk/internal/api/controller"
	"github.com/bassista/tourdesk/internal/dashboard"
	"github.com/gin-gonic/gin"
)

// NewViewRouter sets up view unmount and report routes.
func NewViewRouter(group *gin.RouterGroup, d *dashboard.Dashboard) {
	vc := controller.NewViewController(d)

	group.DELETE("views/:view", vc.CloseView)
	group.GET("reports/summary", vc.Summary)
}

// NewMediaRouter sets up the upload conversion route.
func NewMediaRouter(group *gin.RouterGroup, maxBytes int64) {
	mc := controller.NewMediaController(maxBytes)

	group.POST("media/data-url", mc.DataURL)
}

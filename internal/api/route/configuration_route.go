package route

import (
	"github.com/bassista/tourdesk/internal/api/controller"
	"github.com/bassista/tourdesk/internal/config"
	"github.com/gin-gonic/gin"
)

// NewConfigurationRouter sets up configuration-related routes.
func NewConfigurationRouter(group *gin.RouterGroup, cfg *config.Config) {
	cc := controller.NewConfigurationController(cfg)

	group.GET("configuration", cc.GetConfiguration)
}

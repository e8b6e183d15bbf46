package controller

import (
	"net/http"

	"github.com/bassista/tourdesk/internal/config"
	"github.com/gin-gonic/gin"
)

// ConfigurationResponse is what the SPA needs to lay out its views.
type ConfigurationResponse struct {
	RemoteBaseURL     string         `json:"remoteBaseUrl"`
	PageSizes         map[string]int `json:"pageSizes"`
	MaxUploadBytes    int64          `json:"maxUploadBytes"`
	RequestTimeoutSec int            `json:"requestTimeoutSec"`
}

// ConfigurationController handles configuration-related API endpoints.
type ConfigurationController struct {
	config *config.Config
}

func NewConfigurationController(cfg *config.Config) *ConfigurationController {
	return &ConfigurationController{
		config: cfg,
	}
}

// GetConfiguration returns the application configuration for the frontend.
func (cc *ConfigurationController) GetConfiguration(c *gin.Context) {
	v := cc.config.Views
	c.JSON(http.StatusOK, ConfigurationResponse{
		RemoteBaseURL: cc.config.Remote.BaseURL,
		PageSizes: map[string]int{
			"users":         v.UsersPageSize,
			"agents":        v.AgentsPageSize,
			"tours":         v.ToursPageSize,
			"customers":     v.CustomersPageSize,
			"transactions":  v.TransactionsPageSize,
			"agent_details": v.AgentDetailsPageSize,
		},
		MaxUploadBytes:    cc.config.Media.MaxUploadBytes,
		RequestTimeoutSec: int(cc.config.Server.RequestTimeout.Seconds()),
	})
}

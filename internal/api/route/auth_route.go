package route

import (
	"github.com/bassista/tourdesk/internal/api/controller"
	"github.com/bassista/tourdesk/internal/auth"
	"github.com/gin-gonic/gin"
)

// NewAuthRouter sets up the login routes. They are reachable without a session.
func NewAuthRouter(group *gin.RouterGroup, flow *auth.Flow) {
	ac := controller.NewAuthController(flow)

	group.POST("otp/send", ac.SendOTP)
	group.POST("otp/verify", ac.VerifyOTP)
	group.POST("otp/reset", ac.Reset)
	group.POST("logout", ac.Logout)
	group.GET("session", ac.Session)
}

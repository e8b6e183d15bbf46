package controller

import (
	"errors"
	"net/http"

	"github.com/bassista/tourdesk/internal/auth"
	"github.com/bassista/tourdesk/internal/remote"
	"github.com/gin-gonic/gin"
)

type sendOTPRequest struct {
	Mobile string `json:"mobile"`
}

type verifyOTPRequest struct {
	OTP string `json:"otp"`
}

// AuthController drives the OTP login screen.
type AuthController struct {
	flow *auth.Flow
}

func NewAuthController(flow *auth.Flow) *AuthController {
	return &AuthController{flow: flow}
}

// SendOTP handles POST /auth/otp/send.
func (ac *AuthController) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := ac.flow.SendOTP(c.Request.Context(), req.Mobile); err != nil {
		if errors.Is(err, auth.ErrInvalidMobile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ac.flow.State(c.Request.Context()))
}

// VerifyOTP handles POST /auth/otp/verify.
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	err := ac.flow.VerifyOTP(c.Request.Context(), req.OTP)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, ac.flow.State(c.Request.Context()))
	case errors.Is(err, auth.ErrInvalidOTP), errors.Is(err, auth.ErrNoOTPSent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, remote.ErrOTPRejected):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid otp"})
	default:
		writeError(c, err)
	}
}

// Reset handles POST /auth/otp/reset ("change number").
func (ac *AuthController) Reset(c *gin.Context) {
	ac.flow.Reset()
	c.JSON(http.StatusOK, ac.flow.State(c.Request.Context()))
}

// Logout handles POST /auth/logout.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.flow.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ac.flow.State(c.Request.Context()))
}

// Session handles GET /auth/session.
func (ac *AuthController) Session(c *gin.Context) {
	c.JSON(http.StatusOK, ac.flow.State(c.Request.Context()))
}

package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/bassista/tourdesk/internal/form"
	"github.com/bassista/tourdesk/internal/logger"
	"github.com/bassista/tourdesk/internal/remote"
	"github.com/gin-gonic/gin"
)

// errorStatus maps an error to the status the SPA gets.
// Remote failures surface as 502 so the dashboard never mistakes them for its own session state.
func errorStatus(err error) int {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, remote.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, remote.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, remote.ErrEnvelope), errors.Is(err, remote.ErrUnauthorized):
		return http.StatusBadGateway
	}
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorMessage prefers the remote service's own message.
func errorMessage(err error) string {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func writeError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		logger.WithComponent("api").Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": errorMessage(err)})
}

// writeFormError answers a failed submit; the form stays open on every failure.
func writeFormError(c *gin.Context, err error) {
	status := errorStatus(err)
	body := gin.H{"error": errorMessage(err), "form_open": true}
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		body["field"] = verr.Field
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		logger.WithComponent("api").Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, body)
}

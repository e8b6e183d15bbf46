package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/bassista/tourdesk/internal/logger"
	"github.com/gin-gonic/gin"
	honeybadger "github.com/honeybadger-io/honeybadger-go"
)

// HoneybadgerMiddleware reports panics and failed requests to Honeybadger.
// An empty apiKey disables reporting. On panic it notifies and re-panics so
// gin.Recovery writes the response.
func HoneybadgerMiddleware(apiKey, env string) gin.HandlerFunc {
	log := logger.WithComponent("honeybadger")
	if apiKey == "" {
		log.Info("Honeybadger is not active. To enable error reporting, set HONEYBADGER_API_KEY.")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	honeybadger.Configure(honeybadger.Configuration{
		APIKey: apiKey,
		Env:    env,
	})
	log.Info("Honeybadger error reporting is enabled.")

	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				honeybadger.Notify(fmt.Sprintf("Panic: %s %s", c.Request.Method, c.FullPath()),
					c.Request, honeybadger.Context{"stack": string(debug.Stack())}, honeybadger.Tags{"panic", "http"})
				log.Error("recovered from panic, notified Honeybadger: ", rec)
				panic(rec)
			}
		}()

		c.Next()

		status := c.Writer.Status()
		if !reportable(status) {
			return
		}
		route := c.FullPath()
		if status >= 500 {
			honeybadger.Notify(fmt.Sprintf("Error: HTTP %d: %s %s", status, c.Request.Method, route),
				c.Request, honeybadger.Context{"errors": c.Errors.String()}, honeybadger.Tags{"5XX", "http"})
		} else {
			honeybadger.Notify(fmt.Sprintf("Warning: HTTP %d: %s %s", status, c.Request.Method, route), honeybadger.Tags{"4XX", "http"})
		}
		log.Warnf("reported HTTP %d for %s %s", status, c.Request.Method, route)
	}
}

// reportable skips the 4xx answers that are part of normal dashboard use:
// missing routes, logged-out calls, form validation and duplicate keys.
func reportable(status int) bool {
	switch status {
	case http.StatusNotFound, http.StatusUnauthorized, http.StatusBadRequest, http.StatusConflict:
		return false
	}
	return status >= 400
}

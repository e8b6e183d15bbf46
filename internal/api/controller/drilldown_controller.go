package controller

import (
	"net/http"

	"github.com/bassista/tourdesk/internal/drilldown"
	"github.com/gin-gonic/gin"
)

// ToggleHandler expands or collapses the row named by :id. A failed fetch is
// still a 200: the expanded row shows an empty list and the error text.
func ToggleHandler[T any](exp *drilldown.Expander[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing row id"})
			return
		}
		state, _ := exp.Toggle(c.Request.Context(), id)
		c.JSON(http.StatusOK, state)
	}
}

// ExpandedHandler returns the current expansion without fetching.
func ExpandedHandler[T any](exp *drilldown.Expander[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, exp.State())
	}
}

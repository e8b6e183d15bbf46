package route

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewUIRouter serves the dashboard SPA from dir under /ui.
// Unknown /ui/* paths get index.html so client-side routing works.
func NewUIRouter(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")

	r.Static("/ui/assets", filepath.Join(dir, "assets"))

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Header("Content-Type", "image/x-icon")
		c.File(filepath.Join(dir, "assets", "favicon.ico"))
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui")
	})

	r.GET("/ui", func(c *gin.Context) {
		c.File(index)
	})

	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/ui" || strings.HasPrefix(p, "/ui/") {
			c.File(index)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

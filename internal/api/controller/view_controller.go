package controller

import (
	"net/http"

	"github.com/bassista/tourdesk/internal/dashboard"
	"github.com/gin-gonic/gin"
)

// ViewController handles dashboard-wide endpoints: unmounting views and the report summary.
type ViewController struct {
	dash *dashboard.Dashboard
}

func NewViewController(d *dashboard.Dashboard) *ViewController {
	return &ViewController{dash: d}
}

// CloseView handles DELETE /views/:view when the SPA leaves a view.
func (vc *ViewController) CloseView(c *gin.Context) {
	name := c.Param("view")
	if _, ok := vc.dash.Pane(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return
	}
	if err := vc.dash.CloseView(name); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary returns counts over the rows loaded in each view.
func (vc *ViewController) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, vc.dash.Summary())
}

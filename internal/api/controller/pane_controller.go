package controller

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bassista/tourdesk/internal/dashboard"
	"github.com/bassista/tourdesk/internal/export"
	"github.com/gin-gonic/gin"
)

// reserved query keys; every other key is a view filter
const (
	queryPage   = "page"
	querySearch = "q"
)

// PaneController serves one paginated view and its exports.
type PaneController struct {
	Pane dashboard.Pane
	Now  func() time.Time
}

func NewPaneController(p dashboard.Pane) *PaneController {
	return &PaneController{Pane: p, Now: time.Now}
}

// RegisterPaneRoutes registers the list and export endpoints under /name.
func (pc *PaneController) RegisterPaneRoutes(rg *gin.RouterGroup) {
	name := pc.Pane.Name()
	rg.GET("/"+name, pc.List)
	rg.GET("/"+name+"/export.xlsx", pc.ExportXLSX)
	rg.GET("/"+name+"/export.pdf", pc.ExportPDF)
}

// List handles GET /name?page=n&q=text plus filter keys such as is_active.
func (pc *PaneController) List(c *gin.Context) {
	page := 1
	if raw := c.Query(queryPage); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
			return
		}
		page = n
	}

	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if key == queryPage || key == querySearch || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}
	if len(filters) > 0 {
		if err := pc.Pane.SetFilters(filters); err != nil {
			var ferr *dashboard.FilterError
			if errors.As(err, &ferr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			writeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, pc.Pane.List(c.Request.Context(), page, c.Query(querySearch)))
}

// ExportXLSX downloads every loaded row as a spreadsheet.
func (pc *PaneController) ExportXLSX(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, pc.Pane.Table()); err != nil {
		writeError(c, err)
		return
	}
	pc.attach(c, "xlsx", export.ContentTypeXLSX, buf.Bytes())
}

// ExportPDF downloads every loaded row as a PDF report.
func (pc *PaneController) ExportPDF(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WritePDF(&buf, pc.Pane.Table(), pc.Now()); err != nil {
		writeError(c, err)
		return
	}
	pc.attach(c, "pdf", export.ContentTypePDF, buf.Bytes())
}

func (pc *PaneController) attach(c *gin.Context, ext, contentType string, data []byte) {
	filename := fmt.Sprintf("%s-%s.%s", pc.Pane.Name(), pc.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

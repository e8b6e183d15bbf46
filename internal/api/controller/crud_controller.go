package controller

import (
	"context"
	"net/http"

	"github.com/bassista/tourdesk/internal/form"
	"github.com/gin-gonic/gin"
)

// CrudService is the form-backed create/update/delete surface of one resource.
type CrudService[T any] interface {
	Save(ctx context.Context, id string, item T) error
	Delete(ctx context.Context, id string) error
	Form() form.State[T]
	Cancel()
}

// CrudController provides generic form and delete handlers for a resource.
type CrudController[T any] struct {
	Service CrudService[T]
	// Result renders what the view shows after a successful mutation.
	Result func(ctx context.Context) any
}

// RegisterCrudRoutes registers create, update, delete and form endpoints under /resource.
func (cc *CrudController[T]) RegisterCrudRoutes(rg *gin.RouterGroup, resource string) {
	rg.POST("/"+resource, cc.Create)
	rg.PUT("/"+resource+"/:id", cc.Update)
	rg.DELETE("/"+resource+"/:id", cc.Delete)
	rg.GET("/"+resource+"/form", cc.Form)
	rg.POST("/"+resource+"/form/cancel", cc.CancelForm)
}

// Create handles POST requests with a full record.
func (cc *CrudController[T]) Create(c *gin.Context) {
	cc.save(c, "")
}

// Update handles PUT requests with the full edited record.
func (cc *CrudController[T]) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing resource id"})
		return
	}
	cc.save(c, id)
}

func (cc *CrudController[T]) save(c *gin.Context, id string) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "form_open": true})
		return
	}
	if err := cc.Service.Save(c.Request.Context(), id, item); err != nil {
		writeFormError(c, err)
		return
	}
	cc.respond(c)
}

// Delete handles DELETE requests by id.
func (cc *CrudController[T]) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing resource id"})
		return
	}
	if err := cc.Service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	cc.respond(c)
}

// Form returns the current form state, including a kept server message.
func (cc *CrudController[T]) Form(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Service.Form())
}

func (cc *CrudController[T]) CancelForm(c *gin.Context) {
	cc.Service.Cancel()
	c.JSON(http.StatusOK, cc.Service.Form())
}

func (cc *CrudController[T]) respond(c *gin.Context) {
	if cc.Result == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.JSON(http.StatusOK, cc.Result(c.Request.Context()))
}

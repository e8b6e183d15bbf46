package route

import (
	"context"

	"github.com/bassista/tourdesk/internal/api/controller"
	"github.com/bassista/tourdesk/internal/dashboard"
	"github.com/bassista/tourdesk/internal/remote"
	"github.com/gin-gonic/gin"
)

// NewPaneRouter sets up listing, export and form routes of every list view.
func NewPaneRouter(group *gin.RouterGroup, d *dashboard.Dashboard) {
	for _, name := range []string{dashboard.ViewUsers, dashboard.ViewAgents, dashboard.ViewTours, dashboard.ViewCustomers} {
		p, _ := d.Pane(name)
		controller.NewPaneController(p).RegisterPaneRoutes(group)
	}

	users := &controller.CrudController[remote.User]{Service: d.UserEditor, Result: refreshed(d.Users)}
	users.RegisterCrudRoutes(group, dashboard.ViewUsers)

	agents := &controller.CrudController[remote.Agent]{Service: d.AgentEditor, Result: refreshed(d.Agents)}
	agents.RegisterCrudRoutes(group, dashboard.ViewAgents)

	tours := &controller.CrudController[remote.Tour]{Service: d.TourEditor, Result: refreshed(d.Tours)}
	tours.RegisterCrudRoutes(group, dashboard.ViewTours)
}

func refreshed(p dashboard.Pane) func(ctx context.Context) any {
	return func(ctx context.Context) any {
		return p.Refresh(ctx)
	}
}

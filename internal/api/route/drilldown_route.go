package route

import (
	"context"

	"github.com/bassista/tourdesk/internal/api/controller"
	"github.com/bassista/tourdesk/internal/dashboard"
	"github.com/bassista/tourdesk/internal/remote"
	"github.com/gin-gonic/gin"
)

// NewDrilldownRouter sets up row expansion and traveller edit routes.
func NewDrilldownRouter(group *gin.RouterGroup, d *dashboard.Dashboard) {
	group.POST("users/:id/travellers/toggle", controller.ToggleHandler(d.Travellers))
	group.GET("users/travellers/expanded", controller.ExpandedHandler(d.Travellers))
	group.POST("users/:id/transactions/toggle", controller.ToggleHandler(d.Transactions))
	group.GET("users/transactions/expanded", controller.ExpandedHandler(d.Transactions))
	group.POST("agents/:id/details/toggle", controller.ToggleHandler(d.AgentDetails))
	group.GET("agents/details/expanded", controller.ExpandedHandler(d.AgentDetails))

	travellers := &controller.CrudController[remote.Traveller]{
		Service: d.TravellerEditor,
		Result: func(context.Context) any {
			return d.Travellers.State()
		},
	}
	group.PUT("travellers/:id", travellers.Update)
	group.DELETE("travellers/:id", travellers.Delete)
	group.GET("travellers/form", travellers.Form)
	group.POST("travellers/form/cancel", travellers.CancelForm)
}

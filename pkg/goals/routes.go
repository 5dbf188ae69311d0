package goals

import (
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers goal routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, docs *docstore.Documents) {
	h := &handler{
		goalService: NewService(docs),
	}

	g.GET("", h.retrieve)
	g.POST("/daily", h.updateDaily)
	g.POST("/weekly", h.updateWeekly)
	g.POST("/notifications", h.updateNotifications)
}

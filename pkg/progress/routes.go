package progress

import (
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers progress routes on a pre-configured
// group.
func RegisterRoutesWithGroup(g *echo.Group, docs *docstore.Documents) {
	h := &handler{
		coordinator: NewCoordinator(docs),
	}

	g.POST("", h.recordPageTurn)
}

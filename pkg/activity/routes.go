package activity

import (
	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/goals"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers activity routes on a pre-configured
// group.
func RegisterRoutesWithGroup(g *echo.Group, docs *docstore.Documents) {
	h := &handler{
		activityService: NewService(docs, books.NewService(docs), goals.NewService(docs)),
	}

	g.GET("", h.list)
	g.GET("/weekly", h.weekly)
}

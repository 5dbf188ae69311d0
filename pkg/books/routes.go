package books

import (
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers book routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, docs *docstore.Documents) {
	h := &handler{
		bookService: NewService(docs),
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.POST("/import", h.importBook)
}

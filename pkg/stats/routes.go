package stats

import (
	"github.com/bookriapp/bookri/pkg/activity"
	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/goals"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers stats routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, docs *docstore.Documents) {
	bookService := books.NewService(docs)
	activityService := activity.NewService(docs, bookService, goals.NewService(docs))

	h := &handler{
		statsService: NewService(bookService, activityService),
	}

	g.GET("", h.readingStats)
	g.GET("/streak", h.streak)
}

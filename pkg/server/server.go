package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bookriapp/bookri/pkg/activity"
	"github.com/bookriapp/bookri/pkg/binder"
	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/config"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/goals"
	"github.com/bookriapp/bookri/pkg/progress"
	"github.com/bookriapp/bookri/pkg/stats"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
)

func New(cfg *config.Config, docs *docstore.Documents) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	books.RegisterRoutesWithGroup(e.Group("/books"), docs)
	goals.RegisterRoutesWithGroup(e.Group("/goals"), docs)
	activity.RegisterRoutesWithGroup(e.Group("/activity"), docs)
	progress.RegisterRoutesWithGroup(e.Group("/progress"), docs)
	stats.RegisterRoutesWithGroup(e.Group("/stats"), docs)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}

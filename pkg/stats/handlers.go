package stats

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	statsService *Service
}

func (h *handler) readingStats(c echo.Context) error {
	ctx := c.Request().Context()

	params := ReadingStatsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.statsService.ReadingStats(ctx, params.Period)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, stats))
}

func (h *handler) streak(c echo.Context) error {
	ctx := c.Request().Context()

	return errors.WithStack(c.JSON(http.StatusOK, h.statsService.ReadingStreak(ctx)))
}

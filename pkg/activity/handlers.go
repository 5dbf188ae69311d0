package activity

import (
	"net/http"

	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	activityService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListActivityQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.Start != "" || params.End != "" {
		if params.Start == "" {
			return errcodes.ValidationError(`"start" is required`)
		}
		if params.End == "" {
			return errcodes.ValidationError(`"end" is required`)
		}
		if params.Start > params.End {
			return errcodes.ValidationError(`"end" must be greater than or equal to start`)
		}

		days := h.activityService.DataForRange(ctx, params.Start, params.End)
		resp := struct {
			Days  []*models.DailyActivity `json:"days"`
			Total int                     `json:"total"`
		}{days, len(days)}
		return errors.WithStack(c.JSON(http.StatusOK, resp))
	}

	day := h.activityService.DataForDate(ctx, params.Date)
	return errors.WithStack(c.JSON(http.StatusOK, day))
}

func (h *handler) weekly(c echo.Context) error {
	ctx := c.Request().Context()

	return errors.WithStack(c.JSON(http.StatusOK, h.activityService.CurrentWeekStats(ctx)))
}

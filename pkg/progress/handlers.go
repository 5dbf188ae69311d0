package progress

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	coordinator *Coordinator
}

func (h *handler) recordPageTurn(c echo.Context) error {
	ctx := c.Request().Context()

	payload := PageTurnPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.coordinator.RecordPageTurn(ctx, PageTurnOptions{
		BookID:          payload.BookID,
		StartPage:       payload.StartPage,
		EndPage:         payload.EndPage,
		StartTime:       payload.StartTime,
		EndTime:         payload.EndTime,
		DurationMinutes: payload.DurationMinutes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

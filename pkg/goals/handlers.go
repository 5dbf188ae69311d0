package goals

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	goalService *Service
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	return errors.WithStack(c.JSON(http.StatusOK, h.goalService.Goals(ctx)))
}

func (h *handler) updateDaily(c echo.Context) error {
	ctx := c.Request().Context()

	payload := DailyGoalsPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	goals, err := h.goalService.UpdateDailyGoals(ctx, DailyGoalsOptions{
		Duration: payload.Duration,
		Pages:    payload.Pages,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, goals))
}

func (h *handler) updateWeekly(c echo.Context) error {
	ctx := c.Request().Context()

	payload := WeeklyGoalsPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	goals, err := h.goalService.UpdateWeeklyGoals(ctx, WeeklyGoalsOptions{
		Duration: payload.Duration,
		Pages:    payload.Pages,
		Books:    payload.Books,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, goals))
}

func (h *handler) updateNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	payload := NotificationsPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	goals, err := h.goalService.UpdateNotifications(ctx, NotificationOptions{
		Enabled:      payload.Enabled,
		ReminderTime: payload.ReminderTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, goals))
}

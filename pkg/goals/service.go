package goals

import (
	"context"
	"regexp"

	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/duration"
	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/pkg/errors"
)

var reminderTimeRE = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type Service struct {
	docs *docstore.Documents
}

func NewService(docs *docstore.Documents) *Service {
	return &Service{docs: docs}
}

// Goals returns the current goal configuration, lazily initialized to
// defaults.
func (svc *Service) Goals(ctx context.Context) *models.Goals {
	return svc.docs.Goals.Get(ctx)
}

// DailyGoalsOptions holds the daily goal fields to update. Nil fields are
// left untouched.
type DailyGoalsOptions struct {
	Duration *duration.Duration
	Pages    *int
}

// UpdateDailyGoals merges the given fields into the daily goals only. The
// weekly and notification sub-objects are untouched.
func (svc *Service) UpdateDailyGoals(ctx context.Context, opts DailyGoalsOptions) (*models.Goals, error) {
	if opts.Pages != nil && *opts.Pages <= 0 {
		return nil, errcodes.ValidationError(`"pages" must be greater than 0`)
	}
	if opts.Duration != nil && opts.Duration.Minutes() <= 0 {
		return nil, errcodes.ValidationError(`"duration" must be greater than 0`)
	}

	goals := svc.docs.Goals.Get(ctx)
	if opts.Duration != nil {
		goals.Daily.Duration = *opts.Duration
	}
	if opts.Pages != nil {
		goals.Daily.Pages = *opts.Pages
	}

	if err := svc.docs.Goals.Set(ctx, goals); err != nil {
		return nil, errors.WithStack(err)
	}
	return goals, nil
}

// WeeklyGoalsOptions holds the weekly goal fields to update. Nil fields are
// left untouched.
type WeeklyGoalsOptions struct {
	Duration *duration.Duration
	Pages    *int
	Books    *int
}

// UpdateWeeklyGoals merges the given fields into the weekly goals only.
func (svc *Service) UpdateWeeklyGoals(ctx context.Context, opts WeeklyGoalsOptions) (*models.Goals, error) {
	if opts.Pages != nil && *opts.Pages <= 0 {
		return nil, errcodes.ValidationError(`"pages" must be greater than 0`)
	}
	if opts.Duration != nil && opts.Duration.Minutes() <= 0 {
		return nil, errcodes.ValidationError(`"duration" must be greater than 0`)
	}
	if opts.Books != nil && *opts.Books <= 0 {
		return nil, errcodes.ValidationError(`"books" must be greater than 0`)
	}

	goals := svc.docs.Goals.Get(ctx)
	if opts.Duration != nil {
		goals.Weekly.Duration = *opts.Duration
	}
	if opts.Pages != nil {
		goals.Weekly.Pages = *opts.Pages
	}
	if opts.Books != nil {
		goals.Weekly.Books = *opts.Books
	}

	if err := svc.docs.Goals.Set(ctx, goals); err != nil {
		return nil, errors.WithStack(err)
	}
	return goals, nil
}

// NotificationOptions holds the notification fields to update. Nil fields
// are left untouched.
type NotificationOptions struct {
	Enabled      *bool
	ReminderTime *string
}

// UpdateNotifications merges the given fields into the notification
// settings only.
func (svc *Service) UpdateNotifications(ctx context.Context, opts NotificationOptions) (*models.Goals, error) {
	if opts.ReminderTime != nil && !reminderTimeRE.MatchString(*opts.ReminderTime) {
		return nil, errcodes.ValidationError(`"reminder_time" should be in the format of HH:MM`)
	}

	goals := svc.docs.Goals.Get(ctx)
	if opts.Enabled != nil {
		goals.Notifications.Enabled = *opts.Enabled
	}
	if opts.ReminderTime != nil {
		goals.Notifications.ReminderTime = *opts.ReminderTime
	}

	if err := svc.docs.Goals.Set(ctx, goals); err != nil {
		return nil, errors.WithStack(err)
	}
	return goals, nil
}

// CheckDailyAchievement evaluates the given day's totals against the daily
// goals. It never mutates state.
func (svc *Service) CheckDailyAchievement(ctx context.Context, pagesRead int, spent duration.Duration) models.DailyAchievement {
	goals := svc.docs.Goals.Get(ctx)

	achievement := models.DailyAchievement{
		DailyPages:    pagesRead >= goals.Daily.Pages,
		DailyDuration: spent.Minutes() >= goals.Daily.Duration.Minutes(),
	}
	achievement.Overall = achievement.DailyPages && achievement.DailyDuration
	return achievement
}

// CheckWeeklyAchievement evaluates the given week's totals against the
// weekly goals. It never mutates state.
func (svc *Service) CheckWeeklyAchievement(ctx context.Context, pagesRead int, spent duration.Duration, booksCompleted int) models.WeeklyAchievement {
	goals := svc.docs.Goals.Get(ctx)

	achievement := models.WeeklyAchievement{
		WeeklyPages:    pagesRead >= goals.Weekly.Pages,
		WeeklyDuration: spent.Minutes() >= goals.Weekly.Duration.Minutes(),
		WeeklyBooks:    booksCompleted >= goals.Weekly.Books,
	}
	achievement.Overall = achievement.WeeklyPages && achievement.WeeklyDuration && achievement.WeeklyBooks
	return achievement
}

package progress

import (
	"context"
	"time"

	"github.com/bookriapp/bookri/pkg/activity"
	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/duration"
	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/goals"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/pkg/errors"
)

// defaultSessionMinutes is the assumed window length when a page turn
// arrives without timestamps.
const defaultSessionMinutes = 10

// Coordinator fans a page-turn event out to the book, activity, and goal
// layers and assembles the combined result.
type Coordinator struct {
	bookService     *books.Service
	goalService     *goals.Service
	activityService *activity.Service
	now             func() time.Time
}

func NewCoordinator(docs *docstore.Documents) *Coordinator {
	bookService := books.NewService(docs)
	goalService := goals.NewService(docs)
	return &Coordinator{
		bookService:     bookService,
		goalService:     goalService,
		activityService: activity.NewService(docs, bookService, goalService),
		now:             time.Now,
	}
}

// PageTurnOptions describes a finished stretch of reading. Missing times
// default to a window of DurationMinutes (or ten minutes) ending now.
type PageTurnOptions struct {
	BookID          string
	StartPage       int
	EndPage         int
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
}

// BookProgress is the book's state after the page turn.
type BookProgress struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	CurrentPage     int               `json:"current_page"`
	TotalPages      int               `json:"total_pages"`
	Percentage      string            `json:"percentage"`
	PagesRead       int               `json:"pages_read"`
	SessionDuration duration.Duration `json:"session_duration"`
}

// DailySnapshot summarizes today's record after the page turn.
type DailySnapshot struct {
	Date               string            `json:"date"`
	TotalPagesRead     int               `json:"total_pages_read"`
	TotalDurationSpent duration.Duration `json:"total_duration_spent"`
	BooksRead          int               `json:"books_read"`
}

// NewlyAchieved flags goals that flipped from unmet to met in this call.
type NewlyAchieved struct {
	Daily  bool `json:"daily"`
	Weekly bool `json:"weekly"`
}

// GoalsStatus bundles the current achievement state with the transition
// flags.
type GoalsStatus struct {
	Daily         models.DailyAchievement  `json:"daily"`
	Weekly        models.WeeklyAchievement `json:"weekly"`
	NewlyAchieved NewlyAchieved            `json:"newly_achieved"`
}

// Result is the full outcome of a recorded page turn.
type Result struct {
	Book   BookProgress          `json:"book"`
	Daily  DailySnapshot         `json:"daily"`
	Weekly *activity.WeeklyStats `json:"weekly"`
	Goals  GoalsStatus           `json:"goals"`
}

// RecordPageTurn updates the book's progress, records the session, and
// recomputes daily and weekly goal status.
//
// The book write happens before the activity append. If the append then
// fails, the book keeps its new position and the error is returned; callers
// must treat the two writes as independently durable.
func (co *Coordinator) RecordPageTurn(ctx context.Context, opts PageTurnOptions) (*Result, error) {
	if opts.BookID == "" {
		return nil, errcodes.ValidationError(`"book_id" is required`)
	}
	if opts.EndPage < opts.StartPage {
		return nil, errcodes.ValidationError(`"end_page" must be greater than or equal to start_page`)
	}

	book, err := co.bookService.RetrieveBook(ctx, opts.BookID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	startTime, endTime := co.resolveWindow(opts)
	sessionDuration := duration.Between(startTime, endTime)

	// Snapshot the overall daily state before this session lands so the
	// transition can be detected afterwards.
	previouslyAchieved := false
	if today := co.activityService.DataForDate(ctx, ""); today != nil {
		previouslyAchieved = today.GoalsAchieved.Overall
	}

	updated, err := co.bookService.UpdateProgress(ctx, book.ID, opts.EndPage)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	day, err := co.activityService.RecordSession(ctx, activity.RecordSessionOptions{
		BookID:    book.ID,
		StartPage: opts.StartPage,
		EndPage:   opts.EndPage,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	weekly := co.activityService.CurrentWeekStats(ctx)
	weeklyAchievement := co.goalService.CheckWeeklyAchievement(
		ctx, weekly.TotalPagesRead, weekly.TotalDurationSpent, weekly.BooksCompleted)

	return &Result{
		Book: BookProgress{
			ID:              updated.ID,
			Name:            updated.Name,
			CurrentPage:     updated.Progress.CurrentPage,
			TotalPages:      updated.TotalPages,
			Percentage:      updated.Progress.Percentage,
			PagesRead:       opts.EndPage - opts.StartPage,
			SessionDuration: sessionDuration,
		},
		Daily: DailySnapshot{
			Date:               day.Date,
			TotalPagesRead:     day.TotalPagesRead,
			TotalDurationSpent: day.TotalDurationSpent,
			BooksRead:          len(day.Books),
		},
		Weekly: weekly,
		Goals: GoalsStatus{
			Daily:  day.GoalsAchieved,
			Weekly: weeklyAchievement,
			NewlyAchieved: NewlyAchieved{
				Daily: !previouslyAchieved && day.GoalsAchieved.Overall,
				// Weekly transitions aren't tracked; the snapshot lives on
				// the daily record only.
				Weekly: false,
			},
		},
	}, nil
}

func (co *Coordinator) resolveWindow(opts PageTurnOptions) (time.Time, time.Time) {
	minutes := defaultSessionMinutes
	if opts.DurationMinutes != nil {
		minutes = *opts.DurationMinutes
	}

	switch {
	case opts.StartTime != nil && opts.EndTime != nil:
		return *opts.StartTime, *opts.EndTime
	case opts.EndTime != nil:
		return opts.EndTime.Add(-time.Duration(minutes) * time.Minute), *opts.EndTime
	case opts.StartTime != nil:
		return *opts.StartTime, co.now()
	default:
		end := co.now()
		return end.Add(-time.Duration(minutes) * time.Minute), end
	}
}

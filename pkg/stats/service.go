package stats

import (
	"context"
	"sort"
	"time"

	"github.com/bookriapp/bookri/pkg/activity"
	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/dates"
	"github.com/bookriapp/bookri/pkg/duration"
	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/models"
)

// Aggregation periods accepted by ReadingStats.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// streakEpoch bounds how far back the streak scan reaches. No activity
// records predate the app.
const streakEpoch = "2000-01-01"

type Service struct {
	bookService     *books.Service
	activityService *activity.Service
	now             func() time.Time
}

func NewService(bookService *books.Service, activityService *activity.Service) *Service {
	return &Service{
		bookService:     bookService,
		activityService: activityService,
		now:             time.Now,
	}
}

// Streak holds the consecutive-day reading counters.
type Streak struct {
	CurrentStreak int `json:"current_streak"`
	BestStreak    int `json:"best_streak"`
}

// ReadingStreak computes the current and best consecutive-day streaks. A day
// counts when its record shows pages read and at least one book. The current
// streak is zero unless today is active.
func (svc *Service) ReadingStreak(ctx context.Context) *Streak {
	today := dates.Key(svc.now())

	active := []*models.DailyActivity{}
	for _, day := range svc.activityService.DataForRange(ctx, streakEpoch, today) {
		if day.HasReadingActivity() {
			active = append(active, day)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Date > active[j].Date
	})

	streak := &Streak{}

	check := today
	for _, day := range active {
		if day.Date != check {
			break
		}
		streak.CurrentStreak++
		check = dates.AddDays(check, -1)
	}

	run := 0
	previous := ""
	for _, day := range active {
		if previous != "" && dates.DaysBetween(day.Date, previous) == 1 {
			run++
		} else {
			run = 1
		}
		if run > streak.BestStreak {
			streak.BestStreak = run
		}
		previous = day.Date
	}

	return streak
}

// PeriodStats aggregates one period ending today.
type PeriodStats struct {
	Period                string            `json:"period"`
	StartDate             string            `json:"start_date"`
	EndDate               string            `json:"end_date"`
	TotalPagesRead        int               `json:"total_pages_read"`
	TotalDurationSpent    duration.Duration `json:"total_duration_spent"`
	UniqueBooksRead       int               `json:"unique_books_read"`
	BooksCompleted        int               `json:"books_completed"`
	AveragePagesPerDay    float64           `json:"average_pages_per_day"`
	AverageDurationPerDay duration.Duration `json:"average_duration_per_day"`
	DaysWithActivity      int               `json:"days_with_activity"`
}

// ReadingStats aggregates activity from the period's start (today, last
// Sunday, first of the month, or January 1st) through today. Averages are
// over the full calendar span, not just active days.
func (svc *Service) ReadingStats(ctx context.Context, period string) (*PeriodStats, error) {
	now := svc.now()
	end := dates.Key(now)

	var start string
	switch period {
	case PeriodDay:
		start = end
	case PeriodWeek:
		start = dates.Key(dates.WeekStart(now))
	case PeriodMonth:
		start = dates.Key(dates.MonthStart(now))
	case PeriodYear:
		start = dates.Key(dates.YearStart(now))
	default:
		return nil, errcodes.ValidationError(`"period" must be one of the following: "day", "week", "month", "year"`)
	}

	stats := &PeriodStats{
		Period:    period,
		StartDate: start,
		EndDate:   end,
	}

	unique := map[string]bool{}
	completed := map[string]bool{}

	days := svc.activityService.DataForRange(ctx, start, end)
	for _, day := range days {
		stats.TotalPagesRead += day.TotalPagesRead
		stats.TotalDurationSpent = stats.TotalDurationSpent.Add(day.TotalDurationSpent)

		for _, entry := range day.Books {
			unique[entry.ID] = true
			if completed[entry.ID] {
				continue
			}

			book, err := svc.bookService.RetrieveBook(ctx, entry.ID)
			if err != nil {
				continue
			}
			for _, session := range entry.Sessions {
				if book.TotalPages > 0 && session.EndPage >= book.TotalPages {
					completed[entry.ID] = true
					break
				}
			}
		}
	}

	stats.UniqueBooksRead = len(unique)
	stats.BooksCompleted = len(completed)
	stats.DaysWithActivity = len(days)

	dayCount := dates.DaysBetween(start, end) + 1
	stats.AveragePagesPerDay = float64(stats.TotalPagesRead) / float64(dayCount)
	stats.AverageDurationPerDay = duration.FromMinutes(stats.TotalDurationSpent.Minutes() / float64(dayCount))

	return stats, nil
}

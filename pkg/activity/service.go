package activity

import (
	"context"
	"time"

	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/dates"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/duration"
	"github.com/bookriapp/bookri/pkg/errcodes"
	"github.com/bookriapp/bookri/pkg/goals"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/pkg/errors"
)

type Service struct {
	docs        *docstore.Documents
	bookService *books.Service
	goalService *goals.Service
	now         func() time.Time
}

func NewService(docs *docstore.Documents, bookService *books.Service, goalService *goals.Service) *Service {
	return &Service{
		docs:        docs,
		bookService: bookService,
		goalService: goalService,
		now:         time.Now,
	}
}

// DataForDate returns the activity record for the given YYYY-MM-DD date, or
// nil when no reading happened that day. An empty date means today.
func (svc *Service) DataForDate(ctx context.Context, date string) *models.DailyActivity {
	if date == "" {
		date = dates.Key(svc.now())
	}
	for _, day := range svc.docs.Activity.Get(ctx) {
		if day.Date == date {
			return day
		}
	}
	return nil
}

// DataForRange returns the records between start and end inclusive, in
// document order.
func (svc *Service) DataForRange(ctx context.Context, start, end string) []*models.DailyActivity {
	days := []*models.DailyActivity{}
	for _, day := range svc.docs.Activity.Get(ctx) {
		// Date keys sort lexicographically in calendar order.
		if day.Date >= start && day.Date <= end {
			days = append(days, day)
		}
	}
	return days
}

// RecordSessionOptions describes one finished reading session.
type RecordSessionOptions struct {
	BookID    string
	StartPage int
	EndPage   int
	StartTime time.Time
	EndTime   time.Time
}

// RecordSession appends the session to today's record, creating the day and
// the per-book entry as needed, accumulates totals, and recomputes the
// goals-achieved snapshot. Invalid sessions are rejected before any
// mutation.
func (svc *Service) RecordSession(ctx context.Context, opts RecordSessionOptions) (*models.DailyActivity, error) {
	book, err := svc.bookService.RetrieveBook(ctx, opts.BookID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pagesRead := opts.EndPage - opts.StartPage
	if pagesRead <= 0 {
		return nil, errcodes.ValidationError(`"end_page" must be greater than start_page`)
	}
	if opts.EndTime.Before(opts.StartTime) {
		return nil, errcodes.ValidationError(`"end_time" must be greater than or equal to start_time`)
	}
	spent := duration.Between(opts.StartTime, opts.EndTime)

	records := svc.docs.Activity.Get(ctx)

	date := dates.Key(svc.now())
	var day *models.DailyActivity
	for _, d := range records {
		if d.Date == date {
			day = d
			break
		}
	}
	if day == nil {
		day = &models.DailyActivity{
			Date:  date,
			Books: []*models.BookActivity{},
		}
		records = append(records, day)
	}

	entry := day.BookEntry(book.ID)
	if entry == nil {
		entry = &models.BookActivity{
			ID:   book.ID,
			Name: book.Name,
		}
		day.Books = append(day.Books, entry)
	}

	entry.Sessions = append(entry.Sessions, &models.Session{
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
		StartPage: opts.StartPage,
		EndPage:   opts.EndPage,
		PagesRead: pagesRead,
	})
	entry.PagesRead += pagesRead
	entry.DurationSpent = entry.DurationSpent.Add(spent)
	day.TotalPagesRead += pagesRead
	day.TotalDurationSpent = day.TotalDurationSpent.Add(spent)

	day.GoalsAchieved = svc.goalService.CheckDailyAchievement(ctx, day.TotalPagesRead, day.TotalDurationSpent)

	if err := svc.docs.Activity.Set(ctx, records); err != nil {
		return nil, errors.WithStack(err)
	}

	return day, nil
}

// WeeklyStats aggregates the current week, Sunday through today.
type WeeklyStats struct {
	WeekStart          string            `json:"week_start"`
	TotalPagesRead     int               `json:"total_pages_read"`
	TotalDurationSpent duration.Duration `json:"total_duration_spent"`
	UniqueBooksRead    int               `json:"unique_books_read"`
	BooksCompleted     int               `json:"books_completed"`
}

// CurrentWeekStats aggregates all records in the current Sunday-start week.
// A book counts as completed when any of its sessions reached the book's
// last page.
func (svc *Service) CurrentWeekStats(ctx context.Context) *WeeklyStats {
	weekStart := dates.Key(dates.WeekStart(svc.now()))
	weekEnd := dates.AddDays(weekStart, 6)

	stats := &WeeklyStats{WeekStart: weekStart}
	unique := map[string]bool{}
	completed := map[string]bool{}

	for _, day := range svc.DataForRange(ctx, weekStart, weekEnd) {
		stats.TotalPagesRead += day.TotalPagesRead
		stats.TotalDurationSpent = stats.TotalDurationSpent.Add(day.TotalDurationSpent)

		for _, entry := range day.Books {
			unique[entry.ID] = true
			if completed[entry.ID] {
				continue
			}

			book, err := svc.bookService.RetrieveBook(ctx, entry.ID)
			if err != nil {
				// The book may have been removed since; it still counts as
				// read, just not as completed.
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
	return stats
}

package activity

import (
	"context"
	"testing"
	"time"

	"github.com/bookriapp/bookri/pkg/books"
	"github.com/bookriapp/bookri/pkg/docstore"
	"github.com/bookriapp/bookri/pkg/goals"
	"github.com/bookriapp/bookri/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A Wednesday; the week starts Sunday 2025-03-09.
var testNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*Service, *books.Service) {
	t.Helper()

	backend, err := docstore.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	docs := docstore.NewDocuments(backend)
	docs.InitAll(context.Background())

	bookService := books.NewService(docs)
	svc := NewService(docs, bookService, goals.NewService(docs))
	svc.now = func() time.Time { return testNow }
	return svc, bookService
}

func createBook(t *testing.T, bookService *books.Service, name string, totalPages int) *models.Book {
	t.Helper()
	book, err := bookService.CreateBook(context.Background(), books.CreateBookOptions{
		Name:         name,
		FileLocation: "/books/" + name + ".pdf",
		TotalPages:   totalPages,
		FileFormat:   models.FileFormatPDF,
	})
	require.NoError(t, err)
	return book
}

func sessionOptions(bookID string, startPage, endPage, minutes int) RecordSessionOptions {
	return RecordSessionOptions{
		BookID:    bookID,
		StartPage: startPage,
		EndPage:   endPage,
		StartTime: testNow.Add(-time.Duration(minutes) * time.Minute),
		EndTime:   testNow,
	}
}

func TestRecordSessionCreatesDay(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	book := createBook(t, bookService, "Dune", 412)

	day, err := svc.RecordSession(ctx, sessionOptions(book.ID, 0, 10, 15))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-12", day.Date)
	assert.Equal(t, 10, day.TotalPagesRead)
	assert.Equal(t, "15M", day.TotalDurationSpent.String())
	require.Len(t, day.Books, 1)
	entry := day.Books[0]
	assert.Equal(t, book.ID, entry.ID)
	assert.Equal(t, "Dune", entry.Name)
	assert.Equal(t, 10, entry.PagesRead)
	require.Len(t, entry.Sessions, 1)
	assert.Equal(t, 10, entry.Sessions[0].PagesRead)
}

func TestRecordSessionAccumulatesSameDay(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	dune := createBook(t, bookService, "Dune", 412)
	hobbit := createBook(t, bookService, "The Hobbit", 300)

	_, err := svc.RecordSession(ctx, sessionOptions(dune.ID, 0, 10, 15))
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, sessionOptions(dune.ID, 10, 25, 20))
	require.NoError(t, err)
	day, err := svc.RecordSession(ctx, sessionOptions(hobbit.ID, 5, 12, 10))
	require.NoError(t, err)

	assert.Equal(t, 32, day.TotalPagesRead)
	assert.Equal(t, "45M", day.TotalDurationSpent.String())
	require.Len(t, day.Books, 2)

	duneEntry := day.BookEntry(dune.ID)
	require.NotNil(t, duneEntry)
	assert.Equal(t, 25, duneEntry.PagesRead)
	assert.Len(t, duneEntry.Sessions, 2)

	// One record for the whole day.
	assert.Len(t, svc.DataForRange(ctx, "2025-03-12", "2025-03-12"), 1)
}

func TestRecordSessionGoalsSnapshot(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	book := createBook(t, bookService, "Dune", 412)

	// Below both default thresholds (20 pages, 30 minutes).
	day, err := svc.RecordSession(ctx, sessionOptions(book.ID, 0, 10, 15))
	require.NoError(t, err)
	assert.False(t, day.GoalsAchieved.Overall)

	// The second session pushes both totals over.
	day, err = svc.RecordSession(ctx, sessionOptions(book.ID, 10, 25, 20))
	require.NoError(t, err)
	assert.True(t, day.GoalsAchieved.DailyPages)
	assert.True(t, day.GoalsAchieved.DailyDuration)
	assert.True(t, day.GoalsAchieved.Overall)
}

func TestRecordSessionRejections(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	book := createBook(t, bookService, "Dune", 412)

	_, err := svc.RecordSession(ctx, sessionOptions("missing", 0, 10, 15))
	require.EqualError(t, err, "Book not found.")

	_, err = svc.RecordSession(ctx, sessionOptions(book.ID, 10, 10, 15))
	require.EqualError(t, err, `"end_page" must be greater than start_page`)

	opts := sessionOptions(book.ID, 0, 10, 15)
	opts.StartTime, opts.EndTime = opts.EndTime, opts.StartTime
	_, err = svc.RecordSession(ctx, opts)
	require.EqualError(t, err, `"end_time" must be greater than or equal to start_time`)

	// Rejected sessions leave no trace.
	assert.Nil(t, svc.DataForDate(ctx, ""))
}

func TestRecordSessionZeroLengthWindow(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	book := createBook(t, bookService, "Dune", 412)

	day, err := svc.RecordSession(ctx, RecordSessionOptions{
		BookID:    book.ID,
		StartPage: 0,
		EndPage:   5,
		StartTime: testNow,
		EndTime:   testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, day.TotalPagesRead)
	assert.Equal(t, "0M", day.TotalDurationSpent.String())
}

func TestDataForDate(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	book := createBook(t, bookService, "Dune", 412)

	assert.Nil(t, svc.DataForDate(ctx, ""))
	assert.Nil(t, svc.DataForDate(ctx, "2025-03-12"))

	_, err := svc.RecordSession(ctx, sessionOptions(book.ID, 0, 10, 15))
	require.NoError(t, err)

	// Empty date means today.
	require.NotNil(t, svc.DataForDate(ctx, ""))
	assert.Equal(t, "2025-03-12", svc.DataForDate(ctx, "2025-03-12").Date)
	assert.Nil(t, svc.DataForDate(ctx, "2025-03-11"))
}

func TestDataForRangeInclusive(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	// Seed records directly so they span multiple dates.
	records := []*models.DailyActivity{
		{Date: "2025-03-08", TotalPagesRead: 1, Books: []*models.BookActivity{{ID: "b"}}},
		{Date: "2025-03-09", TotalPagesRead: 2, Books: []*models.BookActivity{{ID: "b"}}},
		{Date: "2025-03-10", TotalPagesRead: 3, Books: []*models.BookActivity{{ID: "b"}}},
		{Date: "2025-03-12", TotalPagesRead: 4, Books: []*models.BookActivity{{ID: "b"}}},
	}
	require.NoError(t, svc.docs.Activity.Set(ctx, records))

	days := svc.DataForRange(ctx, "2025-03-09", "2025-03-12")
	require.Len(t, days, 3)
	assert.Equal(t, "2025-03-09", days[0].Date)
	assert.Equal(t, "2025-03-12", days[2].Date)

	assert.Empty(t, svc.DataForRange(ctx, "2025-04-01", "2025-04-30"))
}

func TestCurrentWeekStats(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	book := createBook(t, bookService, "Dune", 412)

	_, err := svc.RecordSession(ctx, sessionOptions(book.ID, 0, 5, 10))
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, sessionOptions(book.ID, 5, 13, 20))
	require.NoError(t, err)

	stats := svc.CurrentWeekStats(ctx)
	assert.Equal(t, "2025-03-09", stats.WeekStart)
	assert.Equal(t, 13, stats.TotalPagesRead)
	assert.Equal(t, "30M", stats.TotalDurationSpent.String())
	assert.Equal(t, 1, stats.UniqueBooksRead)
	assert.Equal(t, 0, stats.BooksCompleted)
}

func TestCurrentWeekStatsCompletion(t *testing.T) {
	t.Parallel()
	svc, bookService := setupService(t)
	ctx := context.Background()
	short := createBook(t, bookService, "Novella", 30)
	long := createBook(t, bookService, "Epic", 1000)

	_, err := svc.RecordSession(ctx, sessionOptions(short.ID, 20, 30, 15))
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, sessionOptions(long.ID, 0, 50, 30))
	require.NoError(t, err)

	stats := svc.CurrentWeekStats(ctx)
	assert.Equal(t, 2, stats.UniqueBooksRead)
	// Only the session that reached the last page completes a book.
	assert.Equal(t, 1, stats.BooksCompleted)
}

func TestCurrentWeekStatsExcludesOtherWeeks(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	records := []*models.DailyActivity{
		// Saturday before the current week.
		{Date: "2025-03-08", TotalPagesRead: 100, Books: []*models.BookActivity{{ID: "b"}}},
		// Sunday, first day of the current week.
		{Date: "2025-03-09", TotalPagesRead: 7, Books: []*models.BookActivity{{ID: "b"}}},
	}
	require.NoError(t, svc.docs.Activity.Set(ctx, records))

	stats := svc.CurrentWeekStats(ctx)
	assert.Equal(t, 7, stats.TotalPagesRead)
}

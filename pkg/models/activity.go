package models

import (
	"time"

	"github.com/bookriapp/bookri/pkg/duration"
)

// DailyActivity is the single aggregate record of all reading done on one
// calendar date. At most one record exists per date; it is created lazily on
// the first session of that date.
type DailyActivity struct {
	Date               string            `json:"date"`
	TotalPagesRead     int               `json:"total_pages_read"`
	TotalDurationSpent duration.Duration `json:"total_duration_spent"`
	Books              []*BookActivity   `json:"books"`
	// GoalsAchieved is a cached snapshot recomputed on every session; the
	// authoritative check is always recomputed from Goals on demand.
	GoalsAchieved DailyAchievement `json:"goals_achieved"`
}

// BookActivity accumulates one book's reading within a single day.
type BookActivity struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	PagesRead     int               `json:"pages_read"`
	DurationSpent duration.Duration `json:"duration_spent"`
	Sessions      []*Session        `json:"sessions"`
}

// Session is one atomic page-turn event. Sessions are strictly append-only:
// never edited or removed once recorded.
type Session struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	StartPage int       `json:"start_page"`
	EndPage   int       `json:"end_page"`
	PagesRead int       `json:"pages_read"`
}

// HasReadingActivity reports whether the day qualifies for streak purposes.
func (d *DailyActivity) HasReadingActivity() bool {
	return d.TotalPagesRead > 0 && len(d.Books) > 0
}

// BookEntry returns the day's entry for a book, or nil if the book hasn't
// been read that day.
func (d *DailyActivity) BookEntry(bookID string) *BookActivity {
	for _, b := range d.Books {
		if b.ID == bookID {
			return b
		}
	}
	return nil
}

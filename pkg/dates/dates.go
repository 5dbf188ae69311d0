package dates

import (
	"time"

	"github.com/pkg/errors"
)

// Layout is the day-key format used across the activity document.
const Layout = "2006-01-02"

// Key returns the UTC day key ("YYYY-MM-DD") for a timestamp.
func Key(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse converts a day key back into a UTC midnight timestamp.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}
	return t, nil
}

// AddDays shifts a day key by the given number of calendar days. An
// unparsable key is returned unchanged.
func AddDays(key string, days int) string {
	t, err := Parse(key)
	if err != nil {
		return key
	}
	return Key(t.AddDate(0, 0, days))
}

// DaysBetween returns the number of calendar days from one key to another
// (positive when to is later). Unparsable keys count as zero days apart.
func DaysBetween(from, to string) int {
	f, err := Parse(from)
	if err != nil {
		return 0
	}
	t, err := Parse(to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}

// WeekStart returns UTC midnight of the most recent Sunday at or before t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthStart returns UTC midnight of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// YearStart returns UTC midnight of January 1st of t's year.
func YearStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}

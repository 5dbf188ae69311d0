package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-03-01", Key(time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)))
	// Keys are always UTC.
	est := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, "2026-03-02", Key(time.Date(2026, 3, 1, 23, 0, 0, 0, est)))
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-03-02", AddDays("2026-03-01", 1))
	assert.Equal(t, "2026-02-28", AddDays("2026-03-01", -1))
	assert.Equal(t, "2026-01-01", AddDays("2025-12-31", 1))
	assert.Equal(t, "garbage", AddDays("garbage", 1))
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, DaysBetween("2026-03-01", "2026-03-02"))
	assert.Equal(t, -1, DaysBetween("2026-03-02", "2026-03-01"))
	assert.Equal(t, 0, DaysBetween("2026-03-01", "2026-03-01"))
	assert.Equal(t, 31, DaysBetween("2026-01-01", "2026-02-01"))
}

func TestWeekStart(t *testing.T) {
	t.Parallel()

	// 2026-03-04 is a Wednesday; the week starts on Sunday 2026-03-01.
	start := WeekStart(time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-01", Key(start))

	// A Sunday is its own week start.
	start = WeekStart(time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-01", Key(start))
}

func TestPeriodStarts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01", Key(MonthStart(now)))
	assert.Equal(t, "2026-01-01", Key(YearStart(now)))
}

func TestParse(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = Parse("not-a-date")
	require.Error(t, err)
}

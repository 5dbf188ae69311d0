package duration

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration is a length of reading time in minutes. It marshals to the
// compact value+unit form used throughout the persisted documents: whole
// minutes under an hour ("45M"), hours with one decimal at an hour or more
// ("1.5H").
type Duration float64

// FromMinutes builds a Duration from a minute count.
func FromMinutes(minutes float64) Duration {
	return Duration(minutes)
}

// Between returns the length of a time window, rounded to whole minutes.
func Between(start, end time.Time) Duration {
	return Duration(math.Round(end.Sub(start).Minutes()))
}

// Parse converts a value+unit string like "30M" or "1.5H" into a Duration.
// The unit is case-insensitive. Malformed input parses as zero rather than
// failing; historical documents contain empty strings for untouched entries.
func Parse(s string) Duration {
	if len(s) < 2 {
		return 0
	}
	value, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0
	}
	switch strings.ToUpper(s[len(s)-1:]) {
	case "H":
		return Duration(value * 60)
	case "M":
		return Duration(value)
	}
	return 0
}

// Minutes returns the duration as a minute count.
func (d Duration) Minutes() float64 {
	return float64(d)
}

// Add sums two durations.
func (d Duration) Add(other Duration) Duration {
	return d + other
}

func (d Duration) String() string {
	minutes := float64(d)
	if minutes >= 60 {
		return strconv.FormatFloat(minutes/60, 'f', 1, 64) + "H"
	}
	return strconv.Itoa(int(math.Round(minutes))) + "M"
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		// Tolerate bare numbers from older documents; they were minutes.
		value, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			*d = 0
			return nil
		}
		*d = Duration(value)
		return nil
	}
	*d = Parse(s)
	return nil
}

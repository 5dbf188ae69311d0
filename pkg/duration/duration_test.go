package duration

import (
	"testing"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		minutes float64
	}{
		{"30M", 30},
		{"0M", 0},
		{"90M", 90},
		{"1.5H", 90},
		{"3.5H", 210},
		{"1h", 60},
		{"45m", 45},
		{"", 0},
		{"M", 0},
		{"abcH", 0},
		{"10X", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.minutes, Parse(tt.input).Minutes(), "parse %q", tt.input)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0M", FromMinutes(0).String())
	assert.Equal(t, "45M", FromMinutes(45).String())
	assert.Equal(t, "59M", FromMinutes(59).String())
	assert.Equal(t, "1.0H", FromMinutes(60).String())
	assert.Equal(t, "1.5H", FromMinutes(90).String())
	assert.Equal(t, "3.5H", FromMinutes(210).String())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	// Round-trip is stable on the minutes value, not on the string form:
	// "90M" and "1.5H" both parse to 90 minutes.
	for _, s := range []string{"0M", "15M", "30M", "59M", "90M", "1.5H", "2.0H", "3.5H"} {
		parsed := Parse(s)
		assert.Equal(t, parsed, Parse(parsed.String()), "round-trip %q", s)
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, FromMinutes(15), Between(start, start.Add(15*time.Minute)))
	assert.Equal(t, FromMinutes(0), Between(start, start))
	// Rounds to the nearest whole minute.
	assert.Equal(t, FromMinutes(10), Between(start, start.Add(9*time.Minute+40*time.Second)))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(FromMinutes(90))
	require.NoError(t, err)
	assert.Equal(t, `"1.5H"`, string(data))

	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"30M"`), &d))
	assert.Equal(t, FromMinutes(30), d)

	// Older documents stored bare minute counts.
	require.NoError(t, json.Unmarshal([]byte(`25`), &d))
	assert.Equal(t, FromMinutes(25), d)
}

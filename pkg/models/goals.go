package models

import (
	"github.com/bookriapp/bookri/pkg/duration"
)

// Goals is the shape of the Goals document: a per-installation singleton
// created with defaults on first access. Updates shallow-merge into one
// sub-object at a time and never replace siblings.
type Goals struct {
	Daily         DailyGoals           `json:"daily"`
	Weekly        WeeklyGoals          `json:"weekly"`
	Notifications NotificationSettings `json:"notifications"`
}

type DailyGoals struct {
	Duration duration.Duration `json:"duration"`
	Pages    int               `json:"pages"`
}

type WeeklyGoals struct {
	Duration duration.Duration `json:"duration"`
	Pages    int               `json:"pages"`
	Books    int               `json:"books"`
}

type NotificationSettings struct {
	Enabled      bool   `json:"enabled"`
	ReminderTime string `json:"reminder_time"`
}

// DefaultGoals returns the goals a fresh installation starts with.
func DefaultGoals() *Goals {
	return &Goals{
		Daily: DailyGoals{
			Duration: duration.FromMinutes(30),
			Pages:    20,
		},
		Weekly: WeeklyGoals{
			Duration: duration.FromMinutes(210),
			Pages:    140,
			Books:    1,
		},
		Notifications: NotificationSettings{
			Enabled:      true,
			ReminderTime: "19:00",
		},
	}
}

// DailyAchievement is the evaluation of a day's totals against the daily
// goals. Overall is the AND of the individual criteria.
type DailyAchievement struct {
	DailyPages    bool `json:"daily_pages"`
	DailyDuration bool `json:"daily_duration"`
	Overall       bool `json:"overall"`
}

// WeeklyAchievement is the evaluation of a week's totals against the weekly
// goals.
type WeeklyAchievement struct {
	WeeklyPages    bool `json:"weekly_pages"`
	WeeklyDuration bool `json:"weekly_duration"`
	WeeklyBooks    bool `json:"weekly_books"`
	Overall        bool `json:"overall"`
}

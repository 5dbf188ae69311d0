package goals

import "github.com/bookriapp/bookri/pkg/duration"

// DailyGoalsPayload is the request body for updating daily goals. Omitted
// fields keep their current values.
type DailyGoalsPayload struct {
	Duration *duration.Duration `json:"duration,omitempty"`
	Pages    *int               `json:"pages,omitempty" validate:"omitempty,gt=0"`
}

// WeeklyGoalsPayload is the request body for updating weekly goals.
type WeeklyGoalsPayload struct {
	Duration *duration.Duration `json:"duration,omitempty"`
	Pages    *int               `json:"pages,omitempty" validate:"omitempty,gt=0"`
	Books    *int               `json:"books,omitempty" validate:"omitempty,gt=0"`
}

// NotificationsPayload is the request body for updating notification
// settings.
type NotificationsPayload struct {
	Enabled      *bool   `json:"enabled,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
}

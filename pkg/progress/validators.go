package progress

import "time"

// PageTurnPayload is the request body for recording a page turn.
type PageTurnPayload struct {
	BookID          string     `json:"book_id" validate:"required"`
	StartPage       int        `json:"start_page" validate:"gte=0"`
	EndPage         int        `json:"end_page" validate:"gte=0"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
}

package activity

// ListActivityQuery selects either a single date or an inclusive range.
type ListActivityQuery struct {
	Date  string `query:"date" json:"date,omitempty" validate:"omitempty,date"`
	Start string `query:"start" json:"start,omitempty" validate:"omitempty,date"`
	End   string `query:"end" json:"end,omitempty" validate:"omitempty,date"`
}

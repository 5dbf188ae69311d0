package stats

// ReadingStatsQuery selects the aggregation period.
type ReadingStatsQuery struct {
	Period string `query:"period" json:"period,omitempty" default:"day" validate:"oneof=day week month year"`
}

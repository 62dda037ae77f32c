package domain

import (
	"time"
)

// Period is a named chart window resolved to a start date relative to now.
type Period string

const (
	PeriodDay       Period = "1d"
	PeriodWeek      Period = "7d"
	PeriodMonth     Period = "30d"
	PeriodHalfYear  Period = "6m"
	PeriodYear      Period = "1y"
	PeriodUnbounded Period = "all"
)

// Valid reports whether the token names a supported period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodHalfYear, PeriodYear, PeriodUnbounded:
		return true
	}
	return false
}

// Start resolves the period to its window start. Day-based tokens are
// wall-clock offsets, 6m/1y are calendar offsets. Nil means unbounded; the
// window end is always now.
func (p Period) Start(now time.Time) *time.Time {
	var start time.Time
	switch p {
	case PeriodDay:
		start = now.Add(-24 * time.Hour)
	case PeriodWeek:
		start = now.Add(-7 * 24 * time.Hour)
	case PeriodMonth:
		start = now.Add(-30 * 24 * time.Hour)
	case PeriodHalfYear:
		start = now.AddDate(0, -6, 0)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &start
}

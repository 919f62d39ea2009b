package graph

import (
	"time"

	"tableflip.dev/mood/pkg/timeutil"
)

// PastMonthLastDay is the cutoff used for a month that is already over.
// Every day of any month is at or before it.
const PastMonthLastDay = 31

// ViewContext is the month being looked at and how much of it has happened.
type ViewContext struct {
	Month       time.Time
	DaysInMonth int
	LastDay     int
}

// NewViewContext builds the view for month as seen at now. Only the year
// and month of month are used; they are compared in now's location.
func NewViewContext(month, now time.Time) ViewContext {
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, now.Location())
	current := timeutil.FirstOfMonth(now)

	vc := ViewContext{Month: month, DaysInMonth: timeutil.DaysIn(month)}
	switch {
	case month.Before(current):
		vc.LastDay = PastMonthLastDay
	case month.Equal(current):
		vc.LastDay = now.Day()
	default:
		vc.LastDay = 0
	}
	return vc
}

package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/wolferonic/swiftbudget/internal/model"
)

// Period names the window of records a clear operation targets.
type Period string

const (
	// PeriodDay clears records from the current calendar day.
	PeriodDay Period = "day"
	// PeriodWeek clears records since the most recent Sunday.
	PeriodWeek Period = "week"
	// PeriodMonth clears records since the 1st of the current month.
	PeriodMonth Period = "month"
	// PeriodYear clears records since January 1st of the current year.
	PeriodYear Period = "year"
	// PeriodAll clears everything.
	PeriodAll Period = "all"
)

// ParsePeriod converts user input into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	case PeriodAll:
		return PeriodAll, nil
	default:
		return "", fmt.Errorf("unknown period %q (expected day, week, month, year or all)", s)
	}
}

// Start computes the window start for the period ending at now. Records
// dated on or after the start fall inside the window; the week starts on
// Sunday.
func (p Period) Start(now time.Time) (model.Date, error) {
	switch p {
	case PeriodDay:
		return model.DateOf(now), nil
	case PeriodWeek:
		return model.DateOf(now.AddDate(0, 0, -int(now.Weekday()))), nil
	case PeriodMonth:
		return model.NewDate(now.Year(), now.Month(), 1), nil
	case PeriodYear:
		return model.NewDate(now.Year(), time.January, 1), nil
	default:
		return model.Date{}, fmt.Errorf("period %q has no window start", p)
	}
}

package utils

import (
	"time"

	"toolstore-backend/internal/domain"
)

// Default date formats per the store specification. Input and output are
// the same pattern today but are kept as independent settings.
const (
	DefaultInputDateFormat  = "01/02/06"
	DefaultOutputDateFormat = "01/02/06"
)

// DateManager classifies rental dates and converts between date values and
// their MM/DD/YY textual form. It carries only fixed configuration, holds
// no mutable state, and is safe for concurrent use without synchronization.
type DateManager struct {
	inputFormat  string
	outputFormat string
}

func NewDateManager() DateManager {
	return DateManager{
		inputFormat:  DefaultInputDateFormat,
		outputFormat: DefaultOutputDateFormat,
	}
}

// ParseDate parses text in the fixed input format. There is no lenient
// fallback; anything that does not match exactly fails with a
// DATE_PARSE_ERROR kind.
func (m DateManager) ParseDate(text string) (time.Time, error) {
	t, err := time.ParseInLocation(m.inputFormat, text, time.Local)
	if err != nil {
		return time.Time{}, domain.NewRequestError(domain.ErrKindDateParse, "invalid date format: %s", text)
	}
	return t, nil
}

// FormatDate renders a date in the fixed output format.
func (m DateManager) FormatDate(t time.Time) string {
	return t.Format(m.outputFormat)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday, using
// the date's local calendar day of week.
func (m DateManager) IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekday is the negation of IsWeekend. A weekday that is also a holiday
// is still a weekday for this predicate; the billing calculator decides
// which bucket wins.
func (m DateManager) IsWeekday(t time.Time) bool {
	return !m.IsWeekend(t)
}

// IsHoliday reports whether the date matches the observed date of either
// store holiday for that date's calendar year. Comparison is by calendar
// day only; time-of-day is ignored.
func (m DateManager) IsHoliday(t time.Time) bool {
	year := t.Year()
	return sameDay(t, ObservedIndependenceDay(year)) || sameDay(t, LaborDay(year))
}

// ObservedIndependenceDay returns the observed date of July 4th for the
// given year. If July 4th falls on a Saturday the holiday is observed the
// Friday before; on a Sunday, the Monday after.
func ObservedIndependenceDay(year int) time.Time {
	d := time.Date(year, time.July, 4, 0, 0, 0, 0, time.Local)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, -1)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

// LaborDay returns the first Monday of September for the given year.
func LaborDay(year int) time.Time {
	d := time.Date(year, time.September, 1, 0, 0, 0, 0, time.Local)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

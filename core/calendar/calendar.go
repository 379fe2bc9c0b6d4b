// Package calendar classifies dates as working or non-working days.
// Non-working days shift the outpatient arrival pattern and feed the models
// as categorical flags.
package calendar

import "time"

// HolidaySource reports whether a date is a registered public holiday. The
// holiday table is externally maintained calendar data; the classifier only
// consumes the lookup.
type HolidaySource interface {
	IsHoliday(d time.Time) bool
}

// Classifier decides whether a date counts as a non-working day for the
// outpatient department.
type Classifier struct {
	holidays HolidaySource
}

// NewClassifier returns a Classifier backed by the given holiday source.
func NewClassifier(src HolidaySource) Classifier {
	return Classifier{holidays: src}
}

// IsNonWorkingDay reports whether d is a public holiday, a weekend day, or
// falls inside the fixed year-end/new-year closure window (Dec 29 through
// Jan 3).
func (c Classifier) IsNonWorkingDay(d time.Time) bool {
	if c.holidays != nil && c.holidays.IsHoliday(d) {
		return true
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	if d.Month() == time.December && d.Day() >= 29 {
		return true
	}
	if d.Month() == time.January && d.Day() <= 3 {
		return true
	}
	return false
}

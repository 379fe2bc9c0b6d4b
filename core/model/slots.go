package model

import "time"

// The forecast window covers a fixed reception day: every 30 minutes from
// 08:00 through 18:00 inclusive.
const (
	WindowStartHour = 8
	WindowEndHour   = 18
	SlotStep        = 30 * time.Minute
	SlotsPerDay     = 21
)

// Slots generates the ordered half-hour slot timestamps of the forecast
// window for the given date. The result always has SlotsPerDay entries.
func Slots(date time.Time) []time.Time {
	start := time.Date(date.Year(), date.Month(), date.Day(), WindowStartHour, 0, 0, 0, date.Location())
	slots := make([]time.Time, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		slots = append(slots, start.Add(time.Duration(i)*SlotStep))
	}
	return slots
}

// SlotLabel formats a slot timestamp as the "HH:MM" label used in reports.
func SlotLabel(t time.Time) string { return t.Format("15:04") }

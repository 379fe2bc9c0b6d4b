package calendar

import "time"

// MemorySource is an in-memory holiday table, mostly used in tests.
type MemorySource struct {
	dates map[string]bool
}

// NewMemorySource builds a source from "YYYY-MM-DD" strings.
func NewMemorySource(dates ...string) *MemorySource {
	m := &MemorySource{dates: make(map[string]bool, len(dates))}
	for _, d := range dates {
		m.dates[d] = true
	}
	return m
}

// Add registers another holiday.
func (m *MemorySource) Add(d time.Time) {
	m.dates[d.Format(dateLayout)] = true
}

// IsHoliday reports whether d is registered.
func (m *MemorySource) IsHoliday(d time.Time) bool {
	return m.dates[d.Format(dateLayout)]
}

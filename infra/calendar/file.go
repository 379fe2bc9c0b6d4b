// Package calendar provides holiday lookups backed by externally maintained
// calendar data.
package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const dateLayout = "2006-01-02"

// FileSource is a holiday table loaded once from a JSON artifact. Two shapes
// are accepted: a map of "YYYY-MM-DD" to holiday name, or a plain array of
// "YYYY-MM-DD" strings.
type FileSource struct {
	dates map[string]bool
}

// LoadFile reads the holiday table at path.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holidays %s: %w", path, err)
	}
	dates := make(map[string]bool)
	var named map[string]string
	if err := json.Unmarshal(data, &named); err == nil {
		for d := range named {
			if err := validDate(d); err != nil {
				return nil, fmt.Errorf("holidays %s: %w", path, err)
			}
			dates[d] = true
		}
		return &FileSource{dates: dates}, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse holidays %s: %w", path, err)
	}
	for _, d := range list {
		if err := validDate(d); err != nil {
			return nil, fmt.Errorf("holidays %s: %w", path, err)
		}
		dates[d] = true
	}
	return &FileSource{dates: dates}, nil
}

// IsHoliday reports whether d is in the loaded table.
func (s *FileSource) IsHoliday(d time.Time) bool {
	return s.dates[d.Format(dateLayout)]
}

// Len returns the number of loaded holidays.
func (s *FileSource) Len() int { return len(s.dates) }

func validDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	return nil
}

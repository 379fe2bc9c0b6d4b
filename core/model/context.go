package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks run parameters rejected before the simulation starts.
var ErrInvalidInput = errors.New("invalid input")

// Accepted range for the expected total daily patient volume.
const (
	MinDailyPatients = 0
	MaxDailyPatients = 5000
)

// DailyContext carries the static context of one forecast run. It is computed
// once before the slot loop and never mutated during the run.
type DailyContext struct {
	Date             time.Time
	IsHoliday        bool
	IsPrevDayHoliday bool
	Weather          Weather
	TotalPatients    int
}

// ValidatePatients checks the expected daily patient volume against the
// accepted range.
func ValidatePatients(n int) error {
	if n < MinDailyPatients || n > MaxDailyPatients {
		return fmt.Errorf("%w: total daily patients %d outside [%d, %d]",
			ErrInvalidInput, n, MinDailyPatients, MaxDailyPatients)
	}
	return nil
}

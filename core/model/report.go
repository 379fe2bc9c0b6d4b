package model

import "time"

// SlotResult is the forecast for a single 30-minute slot. All values are
// rounded to the nearest integer and clamped at zero.
type SlotResult struct {
	Time        string `json:"time"`
	Arrivals    int    `json:"arrivals"`
	Queue       int    `json:"queue"`
	WaitMinutes int    `json:"wait_minutes"`
}

// Summary aggregates a finished run for quick inspection.
type Summary struct {
	TotalArrivals   int     `json:"total_arrivals"`
	PeakQueue       int     `json:"peak_queue"`
	MeanWaitMinutes float64 `json:"mean_wait_minutes"`
}

// Report is the sole output artifact of a forecast run: one SlotResult per
// window slot, in chronological order.
type Report struct {
	RunID   string       `json:"run_id"`
	Date    time.Time    `json:"date"`
	Weather string       `json:"weather"`
	Slots   []SlotResult `json:"slots"`
	Summary Summary      `json:"summary"`
}

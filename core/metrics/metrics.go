package metrics

import "time"

// RunEvent summarises one completed forecast run.
type RunEvent struct {
	RunID         string
	Date          time.Time
	Weather       string
	TotalPatients int
	Slots         int
	Duration      time.Duration
	Time          time.Time
}

// SlotEvent is the per-slot prediction emitted while a run executes.
type SlotEvent struct {
	RunID       string
	Date        time.Time
	Label       string
	Arrivals    int
	Queue       int
	WaitMinutes int
}

// MetricsSink records forecast runs for observability purposes.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
}

// SlotRecorder is implemented by sinks able to record per-slot predictions.
type SlotRecorder interface {
	RecordSlots(evs []SlotEvent) error
}

// NopSink implements all recorder interfaces with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error      { return nil }
func (NopSink) RecordSlots([]SlotEvent) error { return nil }

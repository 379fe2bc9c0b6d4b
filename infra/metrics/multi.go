package metrics

import coremetrics "github.com/kilianp07/opforecast/core/metrics"

// MultiSink fans forecast events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the run event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordSlots forwards slot events to sinks that support them.
func (m *MultiSink) RecordSlots(evs []coremetrics.SlotEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.SlotRecorder); ok {
			if err := rec.RecordSlots(evs); err != nil {
				return err
			}
		}
	}
	return nil
}

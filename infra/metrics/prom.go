package metrics

import (
	coremetrics "github.com/kilianp07/opforecast/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records forecast runs in Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	wait     prometheus.Histogram
	queue    prometheus.Histogram
}

// NewPromSink registers forecast metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_runs_total",
		Help: "Total number of completed forecast runs",
	}, []string{"weather"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_run_duration_seconds",
		Help:    "Wall-clock duration of a forecast run",
		Buckets: prometheus.DefBuckets,
	})
	wait := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_predicted_wait_minutes",
		Help:    "Distribution of predicted per-slot wait times",
		Buckets: prometheus.LinearBuckets(0, 15, 12),
	})
	queue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_predicted_queue_size",
		Help:    "Distribution of predicted per-slot queue sizes",
		Buckets: prometheus.LinearBuckets(0, 10, 12),
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(wait); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			wait = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(queue); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			queue = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, duration: duration, wait: wait, queue: queue}, nil
}

// RecordRun increments the run counter and observes the run duration.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.WithLabelValues(ev.Weather).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordSlots observes the per-slot prediction distributions.
func (s *PromSink) RecordSlots(evs []coremetrics.SlotEvent) error {
	for _, ev := range evs {
		s.wait.Observe(float64(ev.WaitMinutes))
		s.queue.Observe(float64(ev.Queue))
	}
	return nil
}

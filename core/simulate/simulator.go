// Package simulate drives the recursive multi-slot forecast. Each 30-minute
// slot is scored with the three regression models; the predicted arrival
// count and queue size of one slot feed the feature vectors of the next, so
// slots are processed strictly in order within a run. Separate runs share no
// state and may execute concurrently.
package simulate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/opforecast/core/features"
	"github.com/kilianp07/opforecast/core/logger"
	coremetrics "github.com/kilianp07/opforecast/core/metrics"
	"github.com/kilianp07/opforecast/core/model"
	"github.com/kilianp07/opforecast/core/predictor"
)

// ErrPrediction marks a run aborted because a model invocation failed. No
// partial report is surfaced; the run is cheap and fully re-runnable.
var ErrPrediction = errors.New("prediction failed")

// Predictors bundles the three model collaborators of one forecast run.
type Predictors struct {
	Arrivals predictor.Predictor
	Queue    predictor.Predictor
	Wait     predictor.Predictor
}

// rollingState is the mutable state carried slot to slot: the last three
// predicted arrival counts (most recent first) and the queue size entering
// the current slot. One instance exists per run.
type rollingState struct {
	recent     [3]int
	queueCarry int
}

func (st *rollingState) advance(reception, queue int) {
	st.recent = [3]int{reception, st.recent[0], st.recent[1]}
	st.queueCarry = queue
}

// Simulator runs the slot loop. It is stateless between runs and safe for
// concurrent use as long as the predictors are.
type Simulator struct {
	builder features.Builder
	preds   Predictors
	log     logger.Logger
	sink    coremetrics.MetricsSink
}

// NewSimulator validates the collaborators and returns a ready Simulator.
// A nil sink disables metrics recording.
func NewSimulator(builder features.Builder, preds Predictors, log logger.Logger, sink coremetrics.MetricsSink) (*Simulator, error) {
	if preds.Arrivals == nil || preds.Queue == nil || preds.Wait == nil {
		return nil, fmt.Errorf("all three predictors are required")
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Simulator{builder: builder, preds: preds, log: log, sink: sink}, nil
}

// Run executes the forecast for the given daily context and returns the
// ordered per-slot report. Any predictor error aborts the whole run.
func (s *Simulator) Run(ctx model.DailyContext) (model.Report, error) {
	runID := uuid.NewString()
	started := time.Now()
	slots := model.Slots(ctx.Date)
	state := rollingState{}
	results := make([]model.SlotResult, 0, len(slots))
	events := make([]coremetrics.SlotEvent, 0, len(slots))

	for _, slot := range slots {
		label := model.SlotLabel(slot)

		raw, err := s.preds.Arrivals.Predict(s.builder.Arrival(ctx, slot, state.recent))
		if err != nil {
			return model.Report{}, fmt.Errorf("%w: arrivals at %s: %v", ErrPrediction, label, err)
		}
		reception := clamp(raw)

		vec := s.builder.QueueWait(ctx, slot, reception, state.queueCarry)
		rawQueue, err := s.preds.Queue.Predict(vec)
		if err != nil {
			return model.Report{}, fmt.Errorf("%w: queue at %s: %v", ErrPrediction, label, err)
		}
		rawWait, err := s.preds.Wait.Predict(vec)
		if err != nil {
			return model.Report{}, fmt.Errorf("%w: wait time at %s: %v", ErrPrediction, label, err)
		}
		queue := clamp(rawQueue)
		wait := clamp(rawWait)

		results = append(results, model.SlotResult{
			Time:        label,
			Arrivals:    reception,
			Queue:       queue,
			WaitMinutes: wait,
		})
		events = append(events, coremetrics.SlotEvent{
			RunID: runID, Date: ctx.Date, Label: label,
			Arrivals: reception, Queue: queue, WaitMinutes: wait,
		})
		state.advance(reception, queue)
	}

	report := Aggregate(ctx, runID, results)
	s.record(ctx, runID, events, time.Since(started))
	if s.log != nil {
		s.log.Debugw("forecast run complete", map[string]any{
			"run_id": runID,
			"date":   ctx.Date.Format("2006-01-02"),
			"slots":  len(results),
		})
	}
	return report, nil
}

func (s *Simulator) record(ctx model.DailyContext, runID string, events []coremetrics.SlotEvent, d time.Duration) {
	ev := coremetrics.RunEvent{
		RunID:         runID,
		Date:          ctx.Date,
		Weather:       ctx.Weather.String(),
		TotalPatients: ctx.TotalPatients,
		Slots:         len(events),
		Duration:      d,
		Time:          time.Now(),
	}
	if err := s.sink.RecordRun(ev); err != nil && s.log != nil {
		s.log.Warnf("record run metrics: %v", err)
	}
	if rec, ok := s.sink.(coremetrics.SlotRecorder); ok {
		if err := rec.RecordSlots(events); err != nil && s.log != nil {
			s.log.Warnf("record slot metrics: %v", err)
		}
	}
}

// clamp rounds a raw model output to the nearest integer and floors it at
// zero. It is applied before a value is emitted or fed forward into state.
func clamp(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	return r
}

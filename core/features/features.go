// Package features assembles the numeric input vectors for the arrival and
// queue/wait model families. Vectors start all-zero in schema order and only
// the fields the builder knows are overwritten; any additional field a
// schema declares stays 0. This lenient policy mirrors the training
// pipeline, where unused columns are zero-filled rather than rejected.
package features

import (
	"time"

	"github.com/kilianp07/opforecast/core/model"
	"github.com/kilianp07/opforecast/core/predictor"
)

// Feature names shared with the persisted column artifacts.
const (
	FieldIsHoliday      = "is_holiday"
	FieldTotalPatients  = "total_outpatient_count"
	FieldPrevDayHoliday = "prev_day_holiday_flag"
	FieldRain           = "rain_flag"
	FieldSnow           = "snow_flag"
	FieldReception      = "reception_count"
	FieldQueueAtStart   = "queue_at_start_of_slot"
	FieldLag30          = "lag_30min"
	FieldLag60          = "lag_60min"
	FieldLag90          = "lag_90min"
)

// lagFields is ordered most recent first, matching the rolling window.
var lagFields = [3]string{FieldLag30, FieldLag60, FieldLag90}

// Builder materialises feature vectors against the two model schemas. Build
// it once per loaded schema pair and share it across runs; it holds no
// mutable state.
type Builder struct {
	arrival   predictor.Schema
	queueWait predictor.Schema
}

// NewBuilder returns a Builder for the given arrival and queue/wait schemas.
func NewBuilder(arrival, queueWait predictor.Schema) Builder {
	return Builder{arrival: arrival, queueWait: queueWait}
}

// Arrival builds the input vector for the arrival-count model. The lags
// argument holds the last three predicted arrival counts, most recent first;
// lag fields absent from the schema are skipped.
func (b Builder) Arrival(ctx model.DailyContext, slot time.Time, lags [3]int) []float64 {
	vec := make([]float64, b.arrival.Len())
	b.setCommon(vec, b.arrival, ctx, slot)
	for i, name := range lagFields {
		set(vec, b.arrival, name, float64(lags[i]))
	}
	return vec
}

// QueueWait builds the shared input vector for the queue-size and wait-time
// models. reception is this slot's freshly predicted arrival count and
// queueAtStart the queue carried over from the previous slot.
func (b Builder) QueueWait(ctx model.DailyContext, slot time.Time, reception, queueAtStart int) []float64 {
	vec := make([]float64, b.queueWait.Len())
	b.setCommon(vec, b.queueWait, ctx, slot)
	set(vec, b.queueWait, FieldReception, float64(reception))
	set(vec, b.queueWait, FieldQueueAtStart, float64(queueAtStart))
	return vec
}

func (b Builder) setCommon(vec []float64, s predictor.Schema, ctx model.DailyContext, slot time.Time) {
	set(vec, s, predictor.FieldHour, float64(slot.Hour()))
	set(vec, s, predictor.FieldMinute, float64(slot.Minute()))
	set(vec, s, FieldIsHoliday, boolFlag(ctx.IsHoliday))
	set(vec, s, FieldTotalPatients, float64(ctx.TotalPatients))
	set(vec, s, FieldPrevDayHoliday, boolFlag(ctx.IsPrevDayHoliday))
	set(vec, s, FieldRain, boolFlag(ctx.Weather.IsRain()))
	set(vec, s, FieldSnow, boolFlag(ctx.Weather.IsSnow()))
}

func set(vec []float64, s predictor.Schema, name string, v float64) {
	if i, ok := s.Index(name); ok {
		vec[i] = v
	}
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

package simulate

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/opforecast/core/model"
)

// Aggregate assembles the per-slot results into the final report, preserving
// the input order, and attaches the run summary.
func Aggregate(ctx model.DailyContext, runID string, results []model.SlotResult) model.Report {
	return model.Report{
		RunID:   runID,
		Date:    ctx.Date,
		Weather: ctx.Weather.String(),
		Slots:   results,
		Summary: summarize(results),
	}
}

func summarize(results []model.SlotResult) model.Summary {
	if len(results) == 0 {
		return model.Summary{}
	}
	var total, peak int
	waits := make([]float64, len(results))
	for i, r := range results {
		total += r.Arrivals
		if r.Queue > peak {
			peak = r.Queue
		}
		waits[i] = float64(r.WaitMinutes)
	}
	return model.Summary{
		TotalArrivals:   total,
		PeakQueue:       peak,
		MeanWaitMinutes: stat.Mean(waits, nil),
	}
}

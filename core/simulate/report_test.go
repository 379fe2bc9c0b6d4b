package simulate

import (
	"testing"

	"github.com/kilianp07/opforecast/core/model"
)

func TestAggregate_PreservesOrder(t *testing.T) {
	results := []model.SlotResult{
		{Time: "08:00", Arrivals: 3, Queue: 2, WaitMinutes: 10},
		{Time: "08:30", Arrivals: 5, Queue: 7, WaitMinutes: 20},
		{Time: "09:00", Arrivals: 1, Queue: 4, WaitMinutes: 30},
	}
	report := Aggregate(testCtx(), "run-1", results)
	if report.RunID != "run-1" {
		t.Fatalf("run ID not carried: %q", report.RunID)
	}
	for i, r := range report.Slots {
		if r != results[i] {
			t.Fatalf("slot %d reordered or rewritten: %+v", i, r)
		}
	}
}

func TestAggregate_Summary(t *testing.T) {
	results := []model.SlotResult{
		{Time: "08:00", Arrivals: 3, Queue: 2, WaitMinutes: 10},
		{Time: "08:30", Arrivals: 5, Queue: 7, WaitMinutes: 20},
		{Time: "09:00", Arrivals: 1, Queue: 4, WaitMinutes: 30},
	}
	sum := Aggregate(testCtx(), "run-1", results).Summary
	if sum.TotalArrivals != 9 {
		t.Fatalf("total arrivals = %d, want 9", sum.TotalArrivals)
	}
	if sum.PeakQueue != 7 {
		t.Fatalf("peak queue = %d, want 7", sum.PeakQueue)
	}
	if sum.MeanWaitMinutes != 20 {
		t.Fatalf("mean wait = %v, want 20", sum.MeanWaitMinutes)
	}
}

func TestAggregate_Empty(t *testing.T) {
	sum := Aggregate(testCtx(), "run-1", nil).Summary
	if sum != (model.Summary{}) {
		t.Fatalf("empty aggregate should yield a zero summary: %+v", sum)
	}
}

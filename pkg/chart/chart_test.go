package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kilianp07/opforecast/core/model"
)

func sampleReport() model.Report {
	return model.Report{
		RunID:   "run-1",
		Date:    time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		Weather: "rain",
		Slots: []model.SlotResult{
			{Time: "08:00", Arrivals: 4, Queue: 2, WaitMinutes: 12},
			{Time: "08:30", Arrivals: 6, Queue: 5, WaitMinutes: 25},
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport()); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"2026-09-08", "08:00", "queue size", "wait time (min)"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered chart missing %q", want)
		}
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	if err := RenderFile(path, sampleReport()); err != nil {
		t.Fatalf("render file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty chart file")
	}
}

// Package chart renders a forecast report as a standalone HTML page: a bar
// series for the predicted queue size overlaid with a line series for the
// predicted wait time.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/opforecast/core/model"
)

// Render writes the chart HTML for the report to w.
func Render(w io.Writer, report model.Report) error {
	labels := make([]string, len(report.Slots))
	queue := make([]opts.BarData, len(report.Slots))
	wait := make([]opts.LineData, len(report.Slots))
	for i, s := range report.Slots {
		labels[i] = s.Time
		queue[i] = opts.BarData{Value: s.Queue}
		wait[i] = opts.LineData{Value: s.WaitMinutes}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Outpatient forecast",
			Width:     "1100px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Forecast for %s", report.Date.Format("2006-01-02")),
			Subtitle: fmt.Sprintf("weather: %s", report.Weather),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("queue size", queue)

	line := charts.NewLine()
	line.SetXAxis(labels).AddSeries("wait time (min)", wait,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	bar.Overlap(line)
	return bar.Render(w)
}

// RenderFile renders the chart into an HTML file at path.
func RenderFile(path string, report model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	return Render(f, report)
}

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/opforecast/app"
	"github.com/kilianp07/opforecast/config"
	"github.com/kilianp07/opforecast/core/model"
	"github.com/kilianp07/opforecast/infra/logger"
	"github.com/kilianp07/opforecast/pkg/chart"
	"github.com/kilianp07/opforecast/pkg/export"
)

var (
	runDate     string
	runPatients int
	runWeather  string
	runFormat   string
	runChart    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one forecast and print the report",
	RunE:  runForecast,
}

func init() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	runCmd.Flags().StringVar(&runDate, "date", tomorrow, "target date (YYYY-MM-DD)")
	runCmd.Flags().IntVar(&runPatients, "patients", 1200, "expected total daily patients")
	runCmd.Flags().StringVar(&runWeather, "weather", "clear", "weather condition")
	runCmd.Flags().StringVar(&runFormat, "format", "table", "output format: table, json or csv")
	runCmd.Flags().StringVar(&runChart, "chart", "", "also render an HTML chart to this file")
	rootCmd.AddCommand(runCmd)
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	date, err := time.Parse("2006-01-02", runDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", runDate, err)
	}
	weather, err := model.ParseWeather(runWeather)
	if err != nil {
		return err
	}

	report, err := svc.Forecast(date, runPatients, weather)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch runFormat {
	case "table":
		if err := writeTable(out, report); err != nil {
			return err
		}
	case "json":
		if err := export.WriteJSON(out, report); err != nil {
			return err
		}
	case "csv":
		if err := export.WriteCSV(out, report); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", runFormat)
	}

	if runChart != "" {
		if err := chart.RenderFile(runChart, report); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "chart written to %s\n", runChart)
	}
	return nil
}

func writeTable(out io.Writer, report model.Report) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "time\tarrivals\tqueue\twait (min)\n")
	for _, s := range report.Slots {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.Time, s.Arrivals, s.Queue, s.WaitMinutes)
	}
	fmt.Fprintf(tw, "\ntotal arrivals\t%d\npeak queue\t%d\nmean wait\t%.1f min\n",
		report.Summary.TotalArrivals, report.Summary.PeakQueue, report.Summary.MeanWaitMinutes)
	return tw.Flush()
}

// Package export writes forecast reports in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/opforecast/core/model"
)

// WriteJSON writes the report to w in JSON format.
func WriteJSON(w io.Writer, report model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteCSV writes the per-slot rows to w with a header line.
func WriteCSV(w io.Writer, report model.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "arrivals", "queue", "wait_minutes"}); err != nil {
		return err
	}
	for _, s := range report.Slots {
		rec := []string{
			s.Time,
			strconv.Itoa(s.Arrivals),
			strconv.Itoa(s.Queue),
			strconv.Itoa(s.WaitMinutes),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Package forecast exposes the forecast engine over HTTP.
package forecast

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kilianp07/opforecast/core/logger"
	"github.com/kilianp07/opforecast/core/model"
)

// Runner executes one forecast for the given parameters.
type Runner interface {
	Forecast(date time.Time, totalPatients int, weather model.Weather) (model.Report, error)
}

// NewHandler returns an HTTP handler serving forecasts via
// GET /api/forecast?date=YYYY-MM-DD&patients=N&weather=W.
func NewHandler(runner Runner, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()

		date, err := time.Parse("2006-01-02", q.Get("date"))
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		patients, err := parsePatients(q.Get("patients"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		weather, err := model.ParseWeather(q.Get("weather"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		report, err := runner.Forecast(date, patients, weather)
		if err != nil {
			if errors.Is(err, model.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Errorf("forecast %s: %v", q.Get("date"), err)
			http.Error(w, "forecast failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func parsePatients(s string) (int, error) {
	if s == "" {
		return 0, errors.New("patients parameter is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid patients, expected an integer")
	}
	return n, nil
}

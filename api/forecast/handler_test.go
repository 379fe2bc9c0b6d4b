package forecast

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kilianp07/opforecast/core/model"
	"github.com/kilianp07/opforecast/infra/logger"
)

type stubRunner struct {
	report model.Report
	err    error
	gotW   model.Weather
	gotN   int
}

func (s *stubRunner) Forecast(date time.Time, n int, w model.Weather) (model.Report, error) {
	s.gotN, s.gotW = n, w
	return s.report, s.err
}

func TestHandler_OK(t *testing.T) {
	runner := &stubRunner{report: model.Report{
		RunID: "r1",
		Slots: []model.SlotResult{{Time: "08:00", Arrivals: 3}},
	}}
	h := NewHandler(runner, logger.NopLogger{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/forecast?date=2026-09-08&patients=1200&weather=rain", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	if runner.gotN != 1200 || runner.gotW != model.WeatherRain {
		t.Fatalf("runner saw %d/%v", runner.gotN, runner.gotW)
	}
	var got model.Report
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RunID != "r1" {
		t.Fatalf("run ID %q", got.RunID)
	}
}

func TestHandler_BadRequests(t *testing.T) {
	h := NewHandler(&stubRunner{}, logger.NopLogger{})
	cases := []string{
		"/api/forecast",                                            // no params
		"/api/forecast?date=08-09-2026&patients=10&weather=clear",  // bad date
		"/api/forecast?date=2026-09-08&patients=ten&weather=clear", // bad patients
		"/api/forecast?date=2026-09-08&weather=clear",              // missing patients
		"/api/forecast?date=2026-09-08&patients=10&weather=hail",   // bad weather
	}
	for _, url := range cases {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest("GET", url, nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", url, rr.Code)
		}
	}
}

func TestHandler_InvalidInputFromRunner(t *testing.T) {
	runner := &stubRunner{err: model.ErrInvalidInput}
	h := NewHandler(runner, logger.NopLogger{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/forecast?date=2026-09-08&patients=9999&weather=clear", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
}

func TestHandler_RunFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("model exploded")}
	h := NewHandler(runner, logger.NopLogger{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/forecast?date=2026-09-08&patients=10&weather=clear", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rr.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(&stubRunner{}, logger.NopLogger{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/forecast", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rr.Code)
	}
}

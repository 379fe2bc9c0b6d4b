// Package app wires the configured collaborators into a runnable forecast
// service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apiforecast "github.com/kilianp07/opforecast/api/forecast"
	"github.com/kilianp07/opforecast/config"
	corecalendar "github.com/kilianp07/opforecast/core/calendar"
	"github.com/kilianp07/opforecast/core/features"
	coremetrics "github.com/kilianp07/opforecast/core/metrics"
	"github.com/kilianp07/opforecast/core/model"
	corepredictor "github.com/kilianp07/opforecast/core/predictor"
	"github.com/kilianp07/opforecast/core/simulate"
	infracalendar "github.com/kilianp07/opforecast/infra/calendar"
	"github.com/kilianp07/opforecast/infra/logger"
	"github.com/kilianp07/opforecast/infra/metrics"
	"github.com/kilianp07/opforecast/infra/mqtt"
	infrapredictor "github.com/kilianp07/opforecast/infra/predictor"
)

// Service holds the loaded artifacts and executes forecast runs. Models and
// schemas are read-only after load, so concurrent runs are safe.
type Service struct {
	sim        *simulate.Simulator
	classifier corecalendar.Classifier
	publisher  *mqtt.Publisher
	log        logger.Logger

	serverAddr  string
	promEnabled bool
	promPort    string
}

// New loads all artifacts referenced by the configuration and assembles the
// service.
func New(cfg *config.Config) (*Service, error) {
	log := logger.New("service")

	holidays, err := infracalendar.LoadFile(cfg.Calendar.HolidaysPath)
	if err != nil {
		return nil, fmt.Errorf("holiday table: %w", err)
	}

	arrivalSchema, err := infrapredictor.LoadSchema(cfg.Models.ArrivalColumns)
	if err != nil {
		return nil, fmt.Errorf("arrival columns: %w", err)
	}
	multiSchema, err := infrapredictor.LoadSchema(cfg.Models.MultiColumns)
	if err != nil {
		return nil, fmt.Errorf("multi columns: %w", err)
	}

	preds, err := loadPredictors(cfg.Models)
	if err != nil {
		return nil, err
	}

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}

	builder := features.NewBuilder(arrivalSchema, multiSchema)
	sim, err := simulate.NewSimulator(builder, preds, logger.New("simulator"), sink)
	if err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}

	svc := &Service{
		sim:         sim,
		classifier:  corecalendar.NewClassifier(holidays),
		log:         log,
		serverAddr:  cfg.Server.Address,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	return svc, nil
}

func loadPredictors(cfg config.ModelsConfig) (simulate.Predictors, error) {
	load := func(path string) (corepredictor.Predictor, error) {
		if cfg.Backend == config.BackendLinear {
			return infrapredictor.LoadLinearModel(path)
		}
		return infrapredictor.LoadXGBoostModel(path)
	}
	var preds simulate.Predictors
	var err error
	if preds.Arrivals, err = load(cfg.ArrivalsModel); err != nil {
		return preds, fmt.Errorf("arrivals model: %w", err)
	}
	if preds.Queue, err = load(cfg.QueueModel); err != nil {
		return preds, fmt.Errorf("queue model: %w", err)
	}
	if preds.Wait, err = load(cfg.WaitModel); err != nil {
		return preds, fmt.Errorf("wait model: %w", err)
	}
	return preds, nil
}

// Forecast validates the inputs, classifies the target and previous day and
// runs one simulation.
func (s *Service) Forecast(date time.Time, totalPatients int, weather model.Weather) (model.Report, error) {
	if err := model.ValidatePatients(totalPatients); err != nil {
		return model.Report{}, err
	}
	ctx := model.DailyContext{
		Date:             date,
		IsHoliday:        s.classifier.IsNonWorkingDay(date),
		IsPrevDayHoliday: s.classifier.IsNonWorkingDay(date.AddDate(0, 0, -1)),
		Weather:          weather,
		TotalPatients:    totalPatients,
	}
	report, err := s.sim.Run(ctx)
	if err != nil {
		return model.Report{}, err
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(report); err != nil {
			s.log.Warnf("publish report: %v", err)
		}
	}
	return report, nil
}

// Run starts the HTTP API and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/api/forecast", apiforecast.NewHandler(s, logger.New("api")))
	srv := &http.Server{Addr: s.serverAddr, Handler: mux}

	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()

	s.log.Infof("serving forecasts on %s", s.serverAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Close()
	}
	return nil
}

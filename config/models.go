package config

import "fmt"

// Model backends.
const (
	BackendXGBoost = "xgboost"
	BackendLinear  = "linear"
)

// ModelsConfig locates the persisted model and feature-column artifacts.
type ModelsConfig struct {
	// Backend selects the artifact format: "xgboost" or "linear".
	Backend string `json:"backend"`
	// ArrivalsModel is the arrival-count model artifact.
	ArrivalsModel string `json:"arrivals_model"`
	// QueueModel is the queue-size model artifact.
	QueueModel string `json:"queue_model"`
	// WaitModel is the wait-time model artifact.
	WaitModel string `json:"wait_model"`
	// ArrivalColumns is the ordered feature list of the arrival model.
	ArrivalColumns string `json:"arrival_columns"`
	// MultiColumns is the ordered feature list shared by the queue and wait
	// models.
	MultiColumns string `json:"multi_columns"`
}

// SetDefaults applies sane defaults.
func (c *ModelsConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = BackendXGBoost
	}
}

// Validate checks mandatory fields.
func (c ModelsConfig) Validate() error {
	if c.Backend != BackendXGBoost && c.Backend != BackendLinear {
		return fmt.Errorf("unknown model backend %s", c.Backend)
	}
	paths := map[string]string{
		"arrivals_model":  c.ArrivalsModel,
		"queue_model":     c.QueueModel,
		"wait_model":      c.WaitModel,
		"arrival_columns": c.ArrivalColumns,
		"multi_columns":   c.MultiColumns,
	}
	for name, p := range paths {
		if p == "" {
			return fmt.Errorf("models.%s is required", name)
		}
	}
	return nil
}

// CalendarConfig locates the holiday table.
type CalendarConfig struct {
	// HolidaysPath is the JSON holiday table file.
	HolidaysPath string `json:"holidays_path"`
}

// Validate checks mandatory fields.
func (c CalendarConfig) Validate() error {
	if c.HolidaysPath == "" {
		return fmt.Errorf("calendar.holidays_path is required")
	}
	return nil
}

// ServerConfig configures the HTTP API of serve mode.
type ServerConfig struct {
	Address string `json:"address"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}

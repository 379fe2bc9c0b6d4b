package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	data := `models:
  backend: "linear"
  arrivals_model: "arrivals.json"
  queue_model: "queue.json"
  wait_model: "wait.json"
  arrival_columns: "columns_arrivals.json"
  multi_columns: "columns_multi.json"
calendar:
  holidays_path: "holidays.json"
server:
  address: ":8085"
metrics:
  prometheus_enabled: true
mqtt:
  enabled: false
`
	cfg, err := Load(writeConfig(t, "config.yaml", data))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"backend", cfg.Models.Backend, "linear"},
		{"arrivals_model", cfg.Models.ArrivalsModel, "arrivals.json"},
		{"multi_columns", cfg.Models.MultiColumns, "columns_multi.json"},
		{"holidays_path", cfg.Calendar.HolidaysPath, "holidays.json"},
		{"server.address", cfg.Server.Address, ":8085"},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_port_default", cfg.Metrics.PrometheusPort, ":9090"},
		{"mqtt.enabled", cfg.MQTT.Enabled, false},
		{"mqtt.topic_default", cfg.MQTT.Topic, "opforecast/report"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoad_DefaultBackend(t *testing.T) {
	data := `models:
  arrivals_model: "a.json"
  queue_model: "q.json"
  wait_model: "w.json"
  arrival_columns: "ca.json"
  multi_columns: "cm.json"
calendar:
  holidays_path: "h.json"
`
	cfg, err := Load(writeConfig(t, "config.yaml", data))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Models.Backend != BackendXGBoost {
		t.Fatalf("backend = %q, want default %q", cfg.Models.Backend, BackendXGBoost)
	}
	if cfg.Server.Address != ":8080" {
		t.Fatalf("address = %q, want default :8080", cfg.Server.Address)
	}
}

func TestLoad_MissingModelPath(t *testing.T) {
	data := `models:
  arrivals_model: "a.json"
calendar:
  holidays_path: "h.json"
`
	if _, err := Load(writeConfig(t, "config.yaml", data)); err == nil {
		t.Fatalf("expected error for missing model paths")
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	data := `models:
  backend: "tensorflow"
  arrivals_model: "a.json"
  queue_model: "q.json"
  wait_model: "w.json"
  arrival_columns: "ca.json"
  multi_columns: "cm.json"
calendar:
  holidays_path: "h.json"
`
	if _, err := Load(writeConfig(t, "config.yaml", data)); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, err := Load(writeConfig(t, "config.toml", "")); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	data := `models:
  backend: "linear"
  arrivals_model: "a.json"
  queue_model: "q.json"
  wait_model: "w.json"
  arrival_columns: "ca.json"
  multi_columns: "cm.json"
calendar:
  holidays_path: "h.json"
server:
  address: ":8080"
`
	t.Setenv("OPF_SERVER__ADDRESS", ":9999")
	cfg, err := Load(writeConfig(t, "config.yaml", data))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Address != ":9999" {
		t.Fatalf("env override not applied: %q", cfg.Server.Address)
	}
}

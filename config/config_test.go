package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9095 || cfg.RoundRobinTimeQuantum != 2 || cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.StorePath != "cpusched.db" || cfg.ExportDir != "." {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.yaml")
	data := []byte(`port: 8081
scheduler:
  round_robin:
    time_quantum: 4
log:
  level: debug
  format: json
export:
  dir: /tmp/out
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8081 || cfg.RoundRobinTimeQuantum != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.ExportDir != "/tmp/out" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RoundRobinTimeQuantum != 7 {
		t.Errorf("RoundRobinTimeQuantum = %d, want 7", cfg.RoundRobinTimeQuantum)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("explicit missing file: expected error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scheduler:\n  round_robin:\n    time_quantum: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("zero quantum: expected error")
	}
}

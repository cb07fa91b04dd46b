package config_test

import (
	"testing"
	"time"

	"github.com/kgnguhan/agentic-chaser/internal/config"
)

func TestSchedulerDefaults(t *testing.T) {
	cfg := config.SchedulerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Enabled {
		t.Error("scheduling should default to disabled")
	}
	if cfg.Interval != "1h" {
		t.Errorf("interval: got %s, want 1h", cfg.Interval)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("concurrency: got %d, want 4", cfg.Concurrency)
	}
	if cfg.QueueLimit != 50 {
		t.Errorf("queue limit: got %d, want 50", cfg.QueueLimit)
	}
	if cfg.IntervalDuration() != time.Hour {
		t.Errorf("interval duration: got %s", cfg.IntervalDuration())
	}
}

func TestSchedulerEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvSchedulerEnabled, "true")
	t.Setenv(config.EnvSchedulerInterval, "15m")
	t.Setenv(config.EnvSchedulerConcurrency, "8")
	t.Setenv(config.EnvSchedulerQueueLimit, "200")

	cfg := config.SchedulerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled override not applied")
	}
	if cfg.Interval != "15m" {
		t.Errorf("interval: got %s", cfg.Interval)
	}
	if cfg.Concurrency != 8 {
		t.Errorf("concurrency: got %d", cfg.Concurrency)
	}
	if cfg.QueueLimit != 200 {
		t.Errorf("queue limit: got %d", cfg.QueueLimit)
	}
}

func TestSchedulerValidation(t *testing.T) {
	cfg := config.SchedulerConfig{Interval: "whenever"}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected an invalid interval to fail")
	}

	cfg = config.SchedulerConfig{Concurrency: -1}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected negative concurrency to fail")
	}
}

func TestSchedulerMerge(t *testing.T) {
	base := config.SchedulerConfig{
		Interval:    "1h",
		Concurrency: 4,
		QueueLimit:  50,
	}

	base.Merge(&config.SchedulerConfig{Enabled: true, Interval: "30m"})

	if !base.Enabled {
		t.Error("enabled not merged")
	}
	if base.Interval != "30m" {
		t.Errorf("interval: got %s", base.Interval)
	}
	if base.Concurrency != 4 || base.QueueLimit != 50 {
		t.Error("unset overlay fields should not clobber the base")
	}
}

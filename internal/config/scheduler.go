package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvSchedulerEnabled     = "CHASER_SCHEDULER_ENABLED"
	EnvSchedulerInterval    = "CHASER_SCHEDULER_INTERVAL"
	EnvSchedulerConcurrency = "CHASER_SCHEDULER_CONCURRENCY"
	EnvSchedulerQueueLimit  = "CHASER_SCHEDULER_QUEUE_LIMIT"
)

// SchedulerConfig controls the periodic chase cycle.
type SchedulerConfig struct {
	Enabled     bool   `toml:"enabled"`
	Interval    string `toml:"interval"`
	Concurrency int    `toml:"concurrency"`
	QueueLimit  int    `toml:"queue_limit"`
}

// IntervalDuration returns Interval as a time.Duration.
func (c *SchedulerConfig) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Interval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *SchedulerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *SchedulerConfig) Merge(overlay *SchedulerConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Interval != "" {
		c.Interval = overlay.Interval
	}
	if overlay.Concurrency != 0 {
		c.Concurrency = overlay.Concurrency
	}
	if overlay.QueueLimit != 0 {
		c.QueueLimit = overlay.QueueLimit
	}
}

func (c *SchedulerConfig) loadDefaults() {
	if c.Interval == "" {
		c.Interval = "1h"
	}
	if c.Concurrency == 0 {
		c.Concurrency = 4
	}
	if c.QueueLimit == 0 {
		c.QueueLimit = 50
	}
}

func (c *SchedulerConfig) loadEnv() {
	if v := os.Getenv(EnvSchedulerEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvSchedulerInterval); v != "" {
		c.Interval = v
	}
	if v := os.Getenv(EnvSchedulerConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Concurrency = n
		}
	}
	if v := os.Getenv(EnvSchedulerQueueLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.QueueLimit = n
		}
	}
}

func (c *SchedulerConfig) validate() error {
	if _, err := time.ParseDuration(c.Interval); err != nil {
		return fmt.Errorf("invalid interval: %w", err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive")
	}
	if c.QueueLimit < 1 {
		return fmt.Errorf("queue_limit must be positive")
	}
	return nil
}

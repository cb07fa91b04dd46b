package storage

import (
	"fmt"
	"os"
)

// Config holds Azure Blob Storage connection parameters for the document
// vault. Incoming uploads land in Container; documents that clear
// verification are mirrored into AcceptedContainer.
type Config struct {
	Container         string `toml:"container" json:"container"`
	AcceptedContainer string `toml:"accepted_container" json:"accepted_container"`
	ConnectionString  string `toml:"connection_string" json:"connection_string"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Container         string
	AcceptedContainer string
	ConnectionString  string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Container != "" {
		c.Container = overlay.Container
	}
	if overlay.AcceptedContainer != "" {
		c.AcceptedContainer = overlay.AcceptedContainer
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
}

func (c *Config) loadDefaults() {
	if c.Container == "" {
		c.Container = "loa-documents"
	}
	if c.AcceptedContainer == "" {
		c.AcceptedContainer = "loa-documents-accepted"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Container != "" {
		if v := os.Getenv(env.Container); v != "" {
			c.Container = v
		}
	}
	if env.AcceptedContainer != "" {
		if v := os.Getenv(env.AcceptedContainer); v != "" {
			c.AcceptedContainer = v
		}
	}
	if env.ConnectionString != "" {
		if v := os.Getenv(env.ConnectionString); v != "" {
			c.ConnectionString = v
		}
	}
}

func (c *Config) validate() error {
	if c.Container == "" {
		return fmt.Errorf("container required")
	}
	if c.AcceptedContainer == "" {
		return fmt.Errorf("accepted_container required")
	}
	if c.Container == c.AcceptedContainer {
		return fmt.Errorf("container and accepted_container must differ")
	}
	if c.ConnectionString == "" {
		return fmt.Errorf("connection_string required")
	}
	return nil
}

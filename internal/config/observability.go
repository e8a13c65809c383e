package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry and runtime visibility.
//
// It is optional at the root level (pointer in Config). If omitted, defaults are
// injected; if partially provided, missing values are filled from the defaults.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces. Always forced to "escola".
	ServiceName string `koanf:"service_name"`

	// Environment is copied from primary.env.
	Environment string `koanf:"environment"`

	Logging      LoggingConfig      `koanf:"logging"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects "json" or "console" output.
	Format string `koanf:"format"`

	// SlowQueryThreshold flags SQL statements slower than this duration.
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`

	// File, when set, also writes logs to a rotating file.
	File LogFileConfig `koanf:"file"`
}

// LogFileConfig configures the rotating file sink. MaxSize is in megabytes,
// MaxAge in days.
type LogFileConfig struct {
	Path       string `koanf:"path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means New Relic is not configured and every
// integration degrades into a no-op.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls the dependency checks run by the status endpoint.
type HealthChecksConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
	Timeout  time.Duration `koanf:"timeout"`
	Checks   []string      `koanf:"checks"`
}

// DefaultObservabilityConfig provides a safe set of defaults.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "escola",
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
			File: LogFileConfig{
				MaxSize:    100,
				MaxBackups: 3,
				MaxAge:     28,
				Compress:   true,
			},
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // mixed log formats otherwise
		},
		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"database", "redis"},
		},
	}
}

// fillDefaults copies default values into zero-valued fields.
func (c *ObservabilityConfig) fillDefaults() {
	d := DefaultObservabilityConfig()

	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Logging.SlowQueryThreshold == 0 {
		c.Logging.SlowQueryThreshold = d.Logging.SlowQueryThreshold
	}
	if c.Logging.File.MaxSize == 0 {
		c.Logging.File.MaxSize = d.Logging.File.MaxSize
	}
	if c.Logging.File.MaxBackups == 0 {
		c.Logging.File.MaxBackups = d.Logging.File.MaxBackups
	}
	if c.Logging.File.MaxAge == 0 {
		c.Logging.File.MaxAge = d.Logging.File.MaxAge
	}
	if c.HealthChecks.Interval == 0 {
		c.HealthChecks.Interval = d.HealthChecks.Interval
	}
	if c.HealthChecks.Timeout == 0 {
		c.HealthChecks.Timeout = d.HealthChecks.Timeout
	}
	if len(c.HealthChecks.Checks) == 0 {
		c.HealthChecks.Checks = d.HealthChecks.Checks
	}
}

// Validate applies custom validation rules that go beyond struct tags.
// The effective log level is resolved first, so an empty level is accepted.
func (c *ObservabilityConfig) Validate() error {
	c.fillDefaults()

	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if level := c.GetLogLevel(); !validLevels[level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.Interval < time.Second || c.HealthChecks.Timeout < time.Second {
		return fmt.Errorf("health_checks interval and timeout must be at least 1s")
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
// An empty level defaults to "debug" in development and "info" elsewhere.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.Environment == "development" || c.Environment == "local" {
		return "debug"
	}
	return "info"
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/rockside/internal/client/device"
	"github.com/dmitrijs2005/rockside/internal/logging"
)

// Config holds runtime settings for the rockside client.
//
// LocationPermission is "prompt", "granted" or "denied". Latitude and
// Longitude are the position the terminal locator reports once access is
// granted.
type Config struct {
	DataDir            string
	LocationPermission string
	Latitude           float64
	Longitude          float64
	LocationTimeout    time.Duration
	StrictSignIn       bool
	SealRecords        bool
	LogLevel           string
	LogBackend         string
	MetricsFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.LocationPermission = device.PolicyPrompt
	c.Latitude = 0
	c.Longitude = 0
	c.LocationTimeout = 10 * time.Second
	c.StrictSignIn = false
	c.SealRecords = false
	c.LogLevel = "warn"
	c.LogBackend = logging.BackendSlog
	c.MetricsFile = ""
}

// Validate rejects values no component could work with.
func (c *Config) Validate() error {
	switch device.Permission(c.LocationPermission) {
	case device.PermissionGranted, device.PermissionDenied, device.PolicyPrompt:
	default:
		return fmt.Errorf("location_permission must be prompt, granted or denied, got %q", c.LocationPermission)
	}
	if c.LocationTimeout < 0 {
		return fmt.Errorf("location_timeout must not be negative, got %s", c.LocationTimeout)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %v", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %v", c.Longitude)
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap:
	default:
		return fmt.Errorf("log_backend must be slog or zap, got %q", c.LogBackend)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}

// Load builds a Config from defaults, the file at path (if not empty) and
// the flags in fs that were explicitly set. fs must already be parsed and
// have been prepared with BindFlags.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if fs != nil {
		if err := applyFlags(fs, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

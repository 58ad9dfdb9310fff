package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/rockside/internal/timex"
)

// FileConfig is a DTO used exclusively for decoding config files.
// Pointer fields tell an absent key from a zero value.
type FileConfig struct {
	DataDir            *string         `json:"data_dir" yaml:"data_dir"`
	LocationPermission *string         `json:"location_permission" yaml:"location_permission"`
	Latitude           *float64        `json:"latitude" yaml:"latitude"`
	Longitude          *float64        `json:"longitude" yaml:"longitude"`
	LocationTimeout    *timex.Duration `json:"location_timeout" yaml:"location_timeout"`
	StrictSignIn       *bool           `json:"strict_sign_in" yaml:"strict_sign_in"`
	SealRecords        *bool           `json:"seal_records" yaml:"seal_records"`
	LogLevel           *string         `json:"log_level" yaml:"log_level"`
	LogBackend         *string         `json:"log_backend" yaml:"log_backend"`
	MetricsFile        *string         `json:"metrics_file" yaml:"metrics_file"`
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.DataDir != nil {
		cfg.DataDir = *fc.DataDir
	}
	if fc.LocationPermission != nil {
		cfg.LocationPermission = *fc.LocationPermission
	}
	if fc.Latitude != nil {
		cfg.Latitude = *fc.Latitude
	}
	if fc.Longitude != nil {
		cfg.Longitude = *fc.Longitude
	}
	if fc.LocationTimeout != nil {
		cfg.LocationTimeout = fc.LocationTimeout.Duration
	}
	if fc.StrictSignIn != nil {
		cfg.StrictSignIn = *fc.StrictSignIn
	}
	if fc.SealRecords != nil {
		cfg.SealRecords = *fc.SealRecords
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogBackend != nil {
		cfg.LogBackend = *fc.LogBackend
	}
	if fc.MetricsFile != nil {
		cfg.MetricsFile = *fc.MetricsFile
	}
}

package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig             = "config"
	FlagDataDir            = "data-dir"
	FlagLocationPermission = "location-permission"
	FlagLatitude           = "lat"
	FlagLongitude          = "lon"
	FlagLocationTimeout    = "location-timeout"
	FlagStrictSignIn       = "strict-sign-in"
	FlagSealRecords        = "seal-records"
	FlagLogLevel           = "log-level"
	FlagLogBackend         = "log-backend"
	FlagMetricsFile        = "metrics-file"
)

// BindFlags registers every setting on fs. Defaults shown in help come
// from LoadDefaults; the values are read back by Load.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.String(FlagDataDir, d.DataDir, "directory for the database and picked photos")
	fs.String(FlagLocationPermission, d.LocationPermission, "location access: prompt, granted or denied")
	fs.Float64(FlagLatitude, d.Latitude, "latitude reported by the device locator")
	fs.Float64(FlagLongitude, d.Longitude, "longitude reported by the device locator")
	fs.Duration(FlagLocationTimeout, d.LocationTimeout, "upper bound for one location request")
	fs.Bool(FlagStrictSignIn, d.StrictSignIn, "reject sign-in unless it matches the stored credentials")
	fs.Bool(FlagSealRecords, d.SealRecords, "encrypt stored records with a device key")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.String(FlagLogBackend, d.LogBackend, "log backend: slog or zap")
	fs.String(FlagMetricsFile, d.MetricsFile, "write Prometheus metrics to this file on exit")
}

// applyFlags copies every flag the user changed into cfg.
func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagDataDir:
			cfg.DataDir, err = fs.GetString(f.Name)
		case FlagLocationPermission:
			cfg.LocationPermission, err = fs.GetString(f.Name)
		case FlagLatitude:
			cfg.Latitude, err = fs.GetFloat64(f.Name)
		case FlagLongitude:
			cfg.Longitude, err = fs.GetFloat64(f.Name)
		case FlagLocationTimeout:
			cfg.LocationTimeout, err = fs.GetDuration(f.Name)
		case FlagStrictSignIn:
			cfg.StrictSignIn, err = fs.GetBool(f.Name)
		case FlagSealRecords:
			cfg.SealRecords, err = fs.GetBool(f.Name)
		case FlagLogLevel:
			cfg.LogLevel, err = fs.GetString(f.Name)
		case FlagLogBackend:
			cfg.LogBackend, err = fs.GetString(f.Name)
		case FlagMetricsFile:
			cfg.MetricsFile, err = fs.GetString(f.Name)
		}
	})
	return err
}

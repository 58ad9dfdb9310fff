// Package config loads runtime configuration for the rockside client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file given with -c/--config. The format follows the
//     extension: .yaml and .yml are YAML, anything else is JSON.
//  3. Command-line flags (see BindFlags). Only flags the user actually set
//     override earlier values.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "10s" or
// integer nanoseconds:
//
//	data_dir: /var/lib/rockside
//	location_permission: prompt
//	latitude: -1.2921
//	longitude: 36.8219
//	location_timeout: 10s
//	strict_sign_in: false
//	seal_records: true
//	log_level: info
//	log_backend: zap
//	metrics_file: /var/lib/node_exporter/rockside.prom
//
// Keys missing from the file keep their default value.
package config

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Default configuration constants.
const (
	defaultAddr             = ":9090"
	defaultFirstYear        = 2024
	defaultFetchTimeoutMS   = 15_000
	defaultHallFetchWorkers = 4
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// DataFolder is the URL prefix under which split CSV sheets live,
	// e.g. "https://club.example.org/data". Trailing slashes are tolerated.
	DataFolder string `koanf:"data_folder"`

	// FirstYear is the inclusive lower bound for hall of fame enumeration.
	FirstYear int `koanf:"first_year"`

	// FetchTimeoutMS bounds a single sheet fetch round trip.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// HallFetchWorkers caps concurrent sheet fetches during a hall build.
	HallFetchWorkers int `koanf:"hall_fetch_workers"`

	// PlayerAliases maps exact player IDs to display labels. Aliases are
	// applied only when rendering; aggregation and sorting use raw IDs.
	PlayerAliases map[string]string `koanf:"player_aliases"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             defaultAddr,
		DataFolder:       "data",
		FirstYear:        defaultFirstYear,
		FetchTimeoutMS:   defaultFetchTimeoutMS,
		HallFetchWorkers: defaultHallFetchWorkers,
		PlayerAliases:    map[string]string{},
	}
}

// Package config defines service configuration structures and loading.
//
// Conventions:
// - Provide New() with defaults; Load() layers file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxResultLimit caps the number of trainers/activities returned by
	// match and search endpoints.
	MaxResultLimit int `koanf:"max_result_limit"`

	// RatingWeight, ExperienceWeight, and DistanceWeight are the default
	// ranking weights applied when a request carries none. Distance is
	// reserved and not consumed by the current formula.
	RatingWeight     float64 `koanf:"rating_weight"`
	ExperienceWeight float64 `koanf:"experience_weight"`
	DistanceWeight   float64 `koanf:"distance_weight"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		MaxResultLimit:   100,
		RatingWeight:     0.4,
		ExperienceWeight: 0.3,
		DistanceWeight:   0.3,
	}
}

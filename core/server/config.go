package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxAgeSeconds is the client cache lifetime of availability responses and the
	// refresh horizon used to compute it for single levels.
	MaxAgeSeconds int `mapstructure:"max_age_seconds" default:"300"`
}

// DefaultMaxAge is used when MaxAgeSeconds is not positive.
const DefaultMaxAge = 5 * time.Minute

// MaxAge returns the configured cache lifetime.
func (c Config) MaxAge() time.Duration {
	if c.MaxAgeSeconds <= 0 {
		return DefaultMaxAge
	}
	return time.Duration(c.MaxAgeSeconds) * time.Second
}

// RemainingMaxAge is the number of seconds until data last updated at updatedAt is due
// for its next refresh, never negative.
func (c Config) RemainingMaxAge(updatedAt, now time.Time) int {
	remaining := c.MaxAge() - now.Sub(updatedAt)
	if remaining < 0 {
		return 0
	}
	return int(remaining / time.Second)
}

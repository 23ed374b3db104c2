package reload

import "time"

// Config holds the reload schedule.
type Config struct {
	// IntervalSeconds between periodic full reloads. Zero or less disables them.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300"`
	// OnStartup runs a full reload before the server starts accepting requests.
	OnStartup bool `mapstructure:"on_startup" default:"true"`
}

// Interval returns IntervalSeconds as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

package upstream

// Config holds settings shared by all upstream HTTP feeds.
type Config struct {
	// User is the basic auth user sent to upstream feeds.
	User string `mapstructure:"user" default:""`
	// Password is the basic auth password sent to upstream feeds.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds connection setup and the whole request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint32 `mapstructure:"breaker_failures" default:"3"`
	// BreakerOpenSeconds is how long the breaker stays open before probing again.
	BreakerOpenSeconds int `mapstructure:"breaker_open_seconds" default:"60"`
}

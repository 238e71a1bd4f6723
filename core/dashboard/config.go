package dashboard

import "time"

// Config holds configuration for the dashboard shell.
type Config struct {
	// DefaultFeature is shown when dashboard_feature is absent or unknown.
	DefaultFeature string `mapstructure:"default_feature" default:"overview"`
	// InitTimeoutSeconds bounds feature initialisation and how long a request waits for it.
	InitTimeoutSeconds int `mapstructure:"init_timeout_seconds" default:"10"`
	// Debug enables the dashboard debug log channel and is exposed to clients.
	Debug bool `mapstructure:"debug" default:"false"`
	// SessionIdleMinutes is how long an unused per-user router is kept.
	SessionIdleMinutes int `mapstructure:"session_idle_minutes" default:"30"`
	// DisabledFeatures lists feature identifiers that report IsEnabled false.
	DisabledFeatures []string `mapstructure:"disabled_features" default:""`
}

// InitTimeout returns InitTimeoutSeconds as a duration.
func (c Config) InitTimeout() time.Duration {
	if c.InitTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.InitTimeoutSeconds) * time.Second
}

// SessionIdle returns SessionIdleMinutes as a duration.
func (c Config) SessionIdle() time.Duration {
	if c.SessionIdleMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

// FeatureEnabled reports whether id is absent from DisabledFeatures.
func (c Config) FeatureEnabled(id string) bool {
	for _, d := range c.DisabledFeatures {
		if d == id {
			return false
		}
	}
	return true
}

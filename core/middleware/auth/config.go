package auth

import "time"

// Config holds configuration for request authentication.
type Config struct {
	// NonceSecret keys the nonce HMAC. It must be identical on every instance.
	NonceSecret string `mapstructure:"nonce_secret" default:"change-me"`
	// NonceLifetimeSeconds is how long a nonce may be used (two ticks).
	NonceLifetimeSeconds int `mapstructure:"nonce_lifetime_seconds" default:"86400"`
	// BootstrapSecret is what the page host sends in X-Dashboard-Bootstrap to
	// obtain a nonce. Empty means bootstrap is only served in development.
	BootstrapSecret string `mapstructure:"bootstrap_secret" default:""`
}

// Lifetime returns NonceLifetimeSeconds as a duration.
func (c Config) Lifetime() time.Duration {
	return time.Duration(c.NonceLifetimeSeconds) * time.Second
}

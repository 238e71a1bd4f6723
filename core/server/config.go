package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// SiteURL is the public URL the dashboard is served from.
	SiteURL string `mapstructure:"site_url" default:"http://localhost:8080"`
	// Environment is the deployment environment (development, staging, production).
	Environment string `mapstructure:"environment" default:"production"`
}

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// IsValidEnvironment checks if the configured environment is valid.
func (c Config) IsValidEnvironment() bool {
	switch c.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return true
	default:
		return false
	}
}

// IsDevelopment reports whether debug output should be enabled by default.
func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// APIBaseURL is the root the dashboard client prefixes REST paths with.
func (c Config) APIBaseURL() string {
	return strings.TrimRight(c.SiteURL, "/")
}

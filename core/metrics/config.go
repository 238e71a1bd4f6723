package metrics

// Config holds configuration for the Prometheus endpoint.
type Config struct {
	// Enabled toggles collection and the /metrics route.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is where the scrape endpoint is mounted.
	Path string `mapstructure:"path" default:"/metrics"`
}

// Package config provides configuration management for the Athlete Dashboard.
//
// It utilizes godotenv to load an optional .env file and Viper to map environment
// variables onto the nested configuration struct. Defaults come from the
// `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: port, public site URL and environment
//   - Database: MySQL or SQLite connection and WordPress table prefix
//   - Storage: S3/MinIO credentials and the uploads bucket
//   - Cache: memory, redis or none for the profile cache
//   - Log: Logging level and format
//   - Auth: nonce secret and lifetime
//   - Dashboard: default feature, init timeout, debug flag, idle sessions, disabled features
//   - Metrics: Prometheus endpoint
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Dashboard.DefaultFeature)
package config

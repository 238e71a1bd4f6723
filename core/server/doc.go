// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the deployment environment.
//
// # Configuration
//
// The Config struct defines the HTTP port, the public site URL (used as the REST
// base handed to the dashboard client at bootstrap) and the environment. Development
// environments turn on the dashboard debug channel by default.
package server

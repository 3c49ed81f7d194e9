// Package server holds the HTTP server configuration and constants.
//
// While the start command handles the server startup, this package
// defines the configuration structure and valid values for server settings,
// such as the deployment environment that decides whether Swagger UI is mounted.
//
// # Configuration
//
// The Config struct defines the HTTP port, request timeouts and the environment
// (development, production).
package server

// Package config provides configuration management for the Country Currency service.
//
// It loads an optional .env file with godotenv and then reads environment
// variables through Viper. Defaults come from the `default` struct tags of
// every section, so each key is known to Viper and can be overridden by its
// environment variable (server.port → SERVER_PORT).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, environment, timeouts)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Sources: upstream country and exchange-rate APIs, timeout, circuit breaker
//   - Artifact: summary image store (minio or filesystem) and read cache
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

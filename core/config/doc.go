// Package config provides configuration management for the inventory levels service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and cache lifetime
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket holding the warehouse files
//   - Database: Recusana database connection
//   - Upstream: Basic auth, timeout and circuit breaker of the HTTP feeds
//   - Sources: Per base store feed settings (SOURCES_NO_URL, SOURCES_BE_PATH, ...)
//   - Reload: Periodic reload interval and startup reload
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sources.BE.LocationID)
package config

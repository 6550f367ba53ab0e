// Package config provides configuration management for Score Sync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags on the partial
// configuration types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, title, description)
//   - Log: Logging level and format
//   - Repository: Content store root directory
//   - Storage: Optional S3/MinIO mirror credentials and bucket settings
//   - Charts: Chart directory and converter command
//   - Bundles: Bundle directory and extraction directory
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

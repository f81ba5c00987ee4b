// Package config provides configuration management for xcstrings-drift.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults are declared as struct tags on the partial
// config structs and bound via reflection, so the tool runs with sensible
// behavior when nothing is configured.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Scan: source scanning settings (file suffix)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Scan.Suffix)
package config

// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) with console or JSON encoding. Output goes to
// standard output so that per-file scan warnings appear inline with the
// drift report.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (development) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Warn("Could not read file, skipping", zap.String("path", path))
package logger

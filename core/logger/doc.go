// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for the rebalancing tool.
//
// # Run Correlation
//
// Every rebalancing run is tagged with a run ID. The WithRunID helper mints a
// fresh UUID and attaches it to the log entry, ensuring that all logs emitted
// by a specific run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("Rebalancing started")
package logger

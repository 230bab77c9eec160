// Package config provides 12-factor configuration management for the explorer.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags override environment variables.
//
// Configuration Sections:
//   - Explorer: start directory, output format, content sniffing
//   - Logging: Log level and output format
//   - Metrics: operation metrics toggle and namespace
//
// Environment Variables:
//   - EXPLORER_START_DIR, EXPLORER_OUTPUT, EXPLORER_DETECT_CONTENT
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED, METRICS_NAMESPACE
package config

// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON lines for machine parsing
//   - Development: Colored console output for human readability
//
// Output defaults to stderr because stdout carries rendered listings and
// search results.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Tool("explorer.list", opID).Debug("listing directory", zap.String("path", dir))
package logging

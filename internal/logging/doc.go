// Package logging provides structured logging utilities for the drivebridge application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Token sanitization for safe credential logging
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "drive.list")
//	logger.Info("listing files",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("exchanging code",
//	    slog.String("token", logging.SanitizeToken(token)))
//
// # Security Considerations
//
// Tokens are never logged directly; SanitizeToken reports only the length.
package logging

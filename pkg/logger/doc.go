// Package logger configures process-wide structured logging for the SDK. It
// wraps log/slog with a single stdout handler, a configurable severity
// threshold and a configurable record format.
package logger

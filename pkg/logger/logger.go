package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LevelCritical sits above slog's ERROR, matching the CRITICAL severity.
const LevelCritical = slog.LevelError + 4

// DefaultFormat interpolates timestamp, logger name, severity and message.
const DefaultFormat = "{time} - {name} - {level} - {message}"

// ErrUnknownLevel is returned by Configure and ParseLevel for a level name
// outside the recognized severities.
var ErrUnknownLevel = validation.NewError("config_unknown_level",
	"must be one of DEBUG, INFO, WARNING, ERROR, CRITICAL")

type settings struct {
	format string
	output io.Writer
}

// Option adjusts Configure beyond the severity threshold.
type Option func(*settings)

// WithFormat sets the record format. The template may reference {time},
// {name}, {level} and {message}; extra attrs append as key=value pairs.
func WithFormat(format string) Option {
	return func(s *settings) { s.format = format }
}

// WithOutput redirects log records away from standard output. Intended for
// tests that capture emitted records.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.output = w }
}

// Configure installs the process-wide logger: a single handler writing
// formatted records to standard output, filtered at the given severity.
// Recognized levels are DEBUG, INFO, WARNING (or WARN), ERROR and CRITICAL,
// case-insensitive; any other name is an error and leaves the previous
// configuration untouched. Repeated calls strictly replace the prior handler,
// so the last call wins and handlers never accumulate.
func Configure(level string, opts ...Option) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	s := settings{format: DefaultFormat, output: os.Stdout}
	for _, opt := range opts {
		opt(&s)
	}

	slog.SetDefault(slog.New(newFormatHandler(s.output, lvl, s.format)))
	return nil
}

// ParseLevel maps a severity name to its slog level, case-insensitively.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING", "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return 0, ErrUnknownLevel
	}
}

// Named returns a child of the default logger whose records render name in
// the {name} slot. Unnamed records render as "root".
func Named(name string) *slog.Logger {
	return slog.Default().With(slog.String("logger", name))
}

// Critical logs at the CRITICAL severity through the default logger.
func Critical(msg string, args ...any) {
	slog.Default().Log(context.Background(), LevelCritical, msg, args...)
}

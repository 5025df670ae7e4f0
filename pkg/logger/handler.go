package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// formatHandler renders records through a positional template instead of the
// key=value layout of slog's built-in handlers.
type formatHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Level
	format string
	name   string
	extras []string
	prefix string
}

func newFormatHandler(out io.Writer, level slog.Level, format string) *formatHandler {
	return &formatHandler{
		mu:     &sync.Mutex{},
		out:    out,
		level:  level,
		format: format,
	}
}

func (h *formatHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level
}

func (h *formatHandler) Handle(_ context.Context, rec slog.Record) error {
	name := h.name
	if name == "" {
		name = "root"
	}

	extras := append([]string{}, h.extras...)
	rec.Attrs(func(a slog.Attr) bool {
		if h.prefix == "" && a.Key == "logger" && a.Value.Kind() == slog.KindString {
			name = a.Value.String()
			return true
		}
		extras = append(extras, h.prefix+a.Key+"="+a.Value.String())
		return true
	})

	ts := rec.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	line := strings.NewReplacer(
		"{time}", ts.Format(timeLayout),
		"{name}", name,
		"{level}", levelName(rec.Level),
		"{message}", rec.Message,
	).Replace(h.format)
	if len(extras) > 0 {
		line += " " + strings.Join(extras, " ")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

func (h *formatHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.extras = append([]string{}, h.extras...)
	for _, a := range attrs {
		if h.prefix == "" && a.Key == "logger" && a.Value.Kind() == slog.KindString {
			clone.name = a.Value.String()
			continue
		}
		clone.extras = append(clone.extras, h.prefix+a.Key+"="+a.Value.String())
	}
	return &clone
}

func (h *formatHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func levelName(l slog.Level) string {
	switch {
	case l >= LevelCritical:
		return "CRITICAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

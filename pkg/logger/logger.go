package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options controls the logger produced by New.
type Options struct {
	Level   string
	Format  string
	Service string
	Output  io.Writer
}

// New constructs a slog logger. JSON is the default format; "text" is meant for local runs.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	service := strings.TrimSpace(opts.Service)
	if service == "" {
		service = "docbridge"
	}
	return slog.New(handler).With("service", service)
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

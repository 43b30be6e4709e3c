// Package logging builds the colorized structured logger used by the CLI.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Options configures NewLogger. The zero value logs at info with color.
type Options struct {
	Level   slog.Level
	NoColor bool
	// Source adds file:line to every record.
	Source bool
}

// ParseLevel accepts the slog level names (debug, info, warn, error, with an
// optional +N/-N offset) in any case. An empty string means info.
func ParseLevel(value string) (slog.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", value)
	}
	return level, nil
}

// NoColorRequested reports whether the NO_COLOR convention asks for plain output.
func NoColorRequested() bool {
	v, ok := os.LookupEnv("NO_COLOR")
	return ok && v != ""
}

func NewLogger(w io.Writer, opts Options) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		AddSource:  opts.Source,
		NoColor:    opts.NoColor,
		TimeFormat: "15:04:05",
	}))
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored on ctx, or slog's default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

// Package logging builds the zerolog logger shared by the CLI, engine and client.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel keeps the terminal quiet enough for the progress bar.
const DefaultLevel = "warn"

// Options configures New.
type Options struct {
	// Level is a zerolog level name (trace, debug, info, warn, error)
	Level string

	// JSON switches from the human console format to one JSON object per line
	JSON bool

	// Out is where log lines go; defaults to stderr
	Out io.Writer
}

// ParseLevel converts a level name to a zerolog.Level. Empty means DefaultLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// New creates the application logger and installs it as the zerolog global logger.
func New(app string, opts Options) (zerolog.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger, nil
}

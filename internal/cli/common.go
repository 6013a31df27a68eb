package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/Juliapixel/emote-shuffler/internal/clock"
	"github.com/Juliapixel/emote-shuffler/internal/config"
	"github.com/Juliapixel/emote-shuffler/internal/engine"
	"github.com/Juliapixel/emote-shuffler/internal/logging"
	"github.com/Juliapixel/emote-shuffler/internal/random"
	"github.com/Juliapixel/emote-shuffler/internal/seventv"
)

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get config paths: %w", err)
		}
		path = paths.Config
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newLogger builds the logger for a command run.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logging.New("emote-shuffler", logging.Options{
		Level: cfg.LogLevel,
		JSON:  logJSON,
		Out:   stderr,
	})
}

// newEngine creates a new engine with real implementations of all dependencies.
// A nil seed draws a random one.
func newEngine(cfg *config.Config, logger zerolog.Logger, seed *uint64) *engine.Engine {
	rng := random.New()
	if seed != nil {
		rng = random.NewSeeded(*seed)
	}
	client := seventv.NewClient(cfg.Client(), logger)
	return engine.New(client, &clock.RealClock{}, rng, logger)
}

// interruptContext returns a context canceled by Ctrl-C.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

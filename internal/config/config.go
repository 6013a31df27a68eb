package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Juliapixel/emote-shuffler/internal/engine"
	"github.com/Juliapixel/emote-shuffler/internal/logging"
	"github.com/Juliapixel/emote-shuffler/internal/random"
	"github.com/Juliapixel/emote-shuffler/internal/seventv"
)

// Environment variables read by Load.
const (
	EnvHome     = "EMOTE_SHUFFLER_HOME"
	EnvToken    = "SEVENTV_TOKEN"
	EnvEndpoint = "SEVENTV_ENDPOINT"
	EnvRate     = "EMOTE_SHUFFLER_RATE"
	EnvLogLevel = "EMOTE_SHUFFLER_LOG"
)

// EnvFile is the dotenv file read from the working directory.
const EnvFile = ".env"

const (
	// DefaultRate is the number of renames per minute 7TV tolerates comfortably
	DefaultRate = 100.0

	// MinTempNameLength keeps placeholder collisions negligible
	MinTempNameLength = 8
)

// ErrInvalidConfig indicates a config value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all settings for a run.
type Config struct {
	// Token is the 7TV auth token
	Token string `yaml:"token"`

	// Endpoint is the 7TV GraphQL endpoint
	Endpoint string `yaml:"endpoint"`

	// Rate is the maximum number of renames per minute
	Rate float64 `yaml:"rate"`

	// TempNameLength is the length of placeholder names used to open cycles
	TempNameLength int `yaml:"temp_name_length"`

	// Timeout is the per-request HTTP timeout
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel is the zerolog level name
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Endpoint:       seventv.DefaultEndpoint,
		Rate:           DefaultRate,
		TempNameLength: random.DefaultTempNameLength,
		Timeout:        30 * time.Second,
		LogLevel:       logging.DefaultLevel,
	}
}

// Load reads the config file at path on top of the defaults and applies
// environment overrides, then values from a .env file in the working directory
// for variables the environment leaves unset. Missing files are not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	dotenv, err := readEnvFile(EnvFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(dotenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readEnvFile parses a dotenv file. A missing file yields no values.
func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	switch {
	case err == nil:
		return values, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
}

// applyEnv applies overrides from the process environment, falling back to
// the dotenv values for variables that are unset or empty.
func (c *Config) applyEnv(dotenv map[string]string) error {
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if v := lookup(EnvToken); v != "" {
		c.Token = v
	}
	if v := lookup(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := lookup(EnvRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvRate, v)
		}
		c.Rate = rate
	}
	return nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if err := engine.ValidateRate(c.Rate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.TempNameLength < MinTempNameLength {
		return fmt.Errorf("%w: temp_name_length must be at least %d, got %d", ErrInvalidConfig, MinTempNameLength, c.TempNameLength)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Client returns the 7TV client configuration.
func (c *Config) Client() seventv.Config {
	cfg := seventv.DefaultConfig()
	if c.Endpoint != "" {
		cfg.Endpoint = c.Endpoint
	}
	cfg.Token = c.Token
	cfg.Timeout = c.Timeout
	return cfg
}

// Package config manages emote-shuffler configuration.
//
// Settings are layered: built-in defaults, then the YAML config file, then
// environment variables, then command-line flags (applied by the CLI). The
// default config file lives at <user config dir>/emote-shuffler/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by emote-shuffler.
type Paths struct {
	// Root is the base directory for configuration (default: <user config dir>/emote-shuffler)
	Root string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for emote-shuffler.
// Paths can be overridden with environment variables:
// - EMOTE_SHUFFLER_HOME: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(EnvHome)
	if root == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		root = filepath.Join(dir, "emote-shuffler")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}

package config

import (
	"fmt"
)

// LoadConfig loads configuration with priority: explicit path > discovered
// config file > defaults.
//
// Pass an empty path to search the standard locations; a missing file is
// then non-fatal and defaults apply.
func LoadConfig(path string) (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. If no explicit path, try to find config file in standard locations
	if path == "" {
		path = FindConfigFile()
	}

	// Load config file if found
	if path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		// File config overwrites defaults
		cfg = fileCfg
	}

	// Validate final configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

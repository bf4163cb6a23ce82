package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing priority, and validates the result.
//
// The file is CONFIG_PATH, or ./config.yaml when CONFIG_PATH is unset. A missing
// default file is not an error; a missing explicit one is.
func Load() (*Config, error) {
	path, explicit := os.Getenv(pathEnv), true
	if path == "" {
		path, explicit = defaultPath, false
	}

	var cfg Config
	if err := read(path, explicit, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, explicit bool, cfg *Config) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}

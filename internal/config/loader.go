package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvConfigPath = "BALLSORT_CONFIG"
	EnvDBPath     = "BALLSORT_DB"
	EnvSSHAddr    = "BALLSORT_SSH_ADDR"
	EnvRunPolicy  = "BALLSORT_RUN_POLICY"
	EnvTickRate   = "BALLSORT_TICK_RATE"
)

// LoadBallSort loads the puzzle configuration.
// Search order: customPath -> ~/.ballsort/configs/ballsort.yaml -> ./configs/ballsort.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// Environment overrides are applied last and the result is validated.
func LoadBallSort(customPath string) (BallSortConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (BallSortConfig, error) {
	cfg := DefaultBallSortConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ballsort.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultBallSortConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ballsort.yaml")); err == nil {
		candidate := DefaultBallSortConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBallSortYAML, &cfg); err != nil {
		return DefaultBallSortConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with BALLSORT_* environment variables.
func ApplyEnv(cfg *BallSortConfig) error {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv(EnvSSHAddr); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv(EnvRunPolicy); v != "" {
		cfg.Rules.RunPolicy = v
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvTickRate, v)
		}
		cfg.Display.TickRate = n
	}
	return nil
}

// ConfigPathFromEnv returns BALLSORT_CONFIG when flagPath is empty.
func ConfigPathFromEnv(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ballsort", "configs", filename)
}

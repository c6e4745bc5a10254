package config

import (
	_ "embed"
)

//go:embed defaults/ballsort.yaml
var defaultBallSortYAML []byte

// DefaultBallSortConfig returns the hardcoded default configuration.
func DefaultBallSortConfig() BallSortConfig {
	return BallSortConfig{
		Rules: RulesConfig{
			RunPolicy: "capped",
		},
		Notices: NoticesConfig{
			DurationMS: 1500,
		},
		Display: DisplayConfig{
			TickRate: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.ballsort/results.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBallSortYAML
}

// Package config provides YAML-based configuration loading for the puzzle,
// with .env and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BallSortConfig contains all configuration for the ball sort puzzle.
type BallSortConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Notices NoticesConfig `yaml:"notices"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// RulesConfig defines gameplay rules.
type RulesConfig struct {
	RunPolicy string `yaml:"run_policy"` // "capped" or "overflow"
}

// NoticesConfig defines how transient messages are shown.
type NoticesConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// DisplayConfig defines terminal refresh parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// StorageConfig defines where results are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Known run policies.
var runPolicies = map[string]bool{
	"capped":   true,
	"overflow": true,
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config values are usable.
func (c BallSortConfig) Validate() error {
	if !runPolicies[c.Rules.RunPolicy] {
		return fmt.Errorf("%w: unknown rules.run_policy %q", ErrInvalidConfig, c.Rules.RunPolicy)
	}
	if c.Notices.DurationMS <= 0 {
		return fmt.Errorf("%w: notices.duration_ms must be positive", ErrInvalidConfig)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: display.tick_rate must be positive", ErrInvalidConfig)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: server.idle_timeout_minutes cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// NoticeDuration returns the notice duration as a time.Duration.
func (c BallSortConfig) NoticeDuration() time.Duration {
	return time.Duration(c.Notices.DurationMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a time.Duration.
func (c BallSortConfig) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at an empty temp dir so
// real user configs never leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	for _, k := range []string{EnvDBPath, EnvSSHAddr, EnvRunPolicy, EnvTickRate, EnvConfigPath} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadBallSort("")
	if err != nil {
		t.Fatalf("LoadBallSort() failed: %v", err)
	}
	if cfg != DefaultBallSortConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultBallSortConfig())
	}
	if len(GetDefaultYAML()) == 0 {
		t.Error("embedded YAML should not be empty")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "rules:\n  run_policy: overflow\nnotices:\n  duration_ms: 500\n")

	cfg, err := LoadBallSort(path)
	if err != nil {
		t.Fatalf("LoadBallSort() failed: %v", err)
	}
	if cfg.Rules.RunPolicy != "overflow" {
		t.Errorf("RunPolicy = %q, expected overflow", cfg.Rules.RunPolicy)
	}
	if cfg.NoticeDuration() != 500*time.Millisecond {
		t.Errorf("NoticeDuration() = %v, expected 500ms", cfg.NoticeDuration())
	}
	// Untouched sections keep their defaults
	if cfg.Display.TickRate != 30 {
		t.Errorf("TickRate = %d, expected default 30", cfg.Display.TickRate)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, "configs", "ballsort.yaml"), "display:\n  tick_rate: 10\n")
	cfg, err := LoadBallSort("")
	if err != nil {
		t.Fatalf("LoadBallSort() failed: %v", err)
	}
	if cfg.Display.TickRate != 10 {
		t.Errorf("local config not used, TickRate = %d", cfg.Display.TickRate)
	}

	// The user config wins over the local one
	writeFile(t, filepath.Join(dir, ".ballsort", "configs", "ballsort.yaml"), "display:\n  tick_rate: 20\n")
	cfg, err = LoadBallSort("")
	if err != nil {
		t.Fatalf("LoadBallSort() failed: %v", err)
	}
	if cfg.Display.TickRate != 20 {
		t.Errorf("user config not preferred, TickRate = %d", cfg.Display.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadBallSort(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "rules: [not, a, map")
	if _, err := LoadBallSort(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "rules:\n  run_policy: sideways\n")
	_, err := LoadBallSort(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown run policy error = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDBPath, "/tmp/results.db")
	t.Setenv(EnvSSHAddr, ":2222")
	t.Setenv(EnvRunPolicy, "overflow")
	t.Setenv(EnvTickRate, "15")

	cfg, err := LoadBallSort("")
	if err != nil {
		t.Fatalf("LoadBallSort() failed: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/results.db" || cfg.Server.Address != ":2222" {
		t.Errorf("env paths not applied: %+v", cfg)
	}
	if cfg.Rules.RunPolicy != "overflow" || cfg.Display.TickRate != 15 {
		t.Errorf("env rules not applied: %+v", cfg)
	}

	t.Setenv(EnvTickRate, "fast")
	if _, err := LoadBallSort(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad tick rate error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BallSortConfig)
	}{
		{"unknown policy", func(c *BallSortConfig) { c.Rules.RunPolicy = "" }},
		{"zero notice duration", func(c *BallSortConfig) { c.Notices.DurationMS = 0 }},
		{"zero tick rate", func(c *BallSortConfig) { c.Display.TickRate = 0 }},
		{"negative idle timeout", func(c *BallSortConfig) { c.Server.IdleTimeoutMinutes = -1 }},
	}

	if err := DefaultBallSortConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBallSortConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	const key = "BALLSORT_DOTENV_TEST"
	t.Setenv(key, "")
	os.Unsetenv(key)

	path := filepath.Join(dir, "test.env")
	writeFile(t, path, key+"=from-file\n")

	if err := LoadDotEnv(filepath.Join(dir, "absent.env"), path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, expected from-file", key, got)
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/ballsort.yaml")

	if got := ConfigPathFromEnv("./flag.yaml"); got != "./flag.yaml" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := ConfigPathFromEnv(""); got != "/etc/ballsort.yaml" {
		t.Errorf("env fallback not used, got %q", got)
	}
}

package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the scheduler connection settings. Values resolve in three
// layers: built-in defaults, then the user config file, then FLOWKIT_*
// environment variables.
type Config struct {
	ServerURL      string `toml:"server_url"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	FailureEmail   string `toml:"failure_email"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults. They mirror an Azkaban
// solo-server installation and are meant to be overridden.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      "http://localhost:8081",
		Username:       "azkaban",
		Password:       "azkaban",
		FailureEmail:   "data-platform@example.com",
		TimeoutSeconds: 30,
	}
}

// ConfigFilePath returns the path of the user config file.
func ConfigFilePath() string {
	return filepath.Join(UserFlowkitSettings.UserConfigsPath, "config.toml")
}

// LoadConfig resolves the effective configuration. A missing config file is
// not an error; the defaults and environment carry the rest.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	configPath := ConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		if err := LoadTOML(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check config file %s: %w", configPath, err)
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes the configuration to the user config file.
func SaveConfig(config *Config) error {
	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("FLOWKIT_SERVER_URL"); v != "" {
		config.ServerURL = v
	}
	if v := os.Getenv("FLOWKIT_USERNAME"); v != "" {
		config.Username = v
	}
	if v := os.Getenv("FLOWKIT_PASSWORD"); v != "" {
		config.Password = v
	}
	if v := os.Getenv("FLOWKIT_FAILURE_EMAIL"); v != "" {
		config.FailureEmail = v
	}
	if v := os.Getenv("FLOWKIT_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FLOWKIT_TIMEOUT_SECONDS value %q: %w", v, err)
		}
		config.TimeoutSeconds = seconds
	}
	return nil
}

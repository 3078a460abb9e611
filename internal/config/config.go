package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mschuldt/bart-mode/internal/api/bart"
	"github.com/mschuldt/bart-mode/internal/stations"
)

// AlertConfig enables a pushover alert when the watched destination's next
// train is at or below the threshold.
type AlertConfig struct {
	Destination      string `yaml:"destination"` // destination station code
	ThresholdMinutes int    `yaml:"threshold_minutes"`
}

type Config struct {
	APIKey              string       `yaml:"api_key"`
	Station             string       `yaml:"station"`
	PollIntervalSeconds int          `yaml:"poll_interval_seconds"`
	Abbreviate          bool         `yaml:"abbreviate"`
	LogLevel            string       `yaml:"log_level"`
	Alert               *AlertConfig `yaml:"alert"`
}

// Default returns the configuration used when no file or flags override it:
// the public API key, Civic Center, one-minute polling.
func Default() Config {
	return Config{
		APIKey:              bart.PublicKey,
		Station:             "civc",
		PollIntervalSeconds: 60,
		LogLevel:            "info",
	}
}

// Interval returns the poll interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A file that exists but fails to parse or validate is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects bad station codes here so they never reach the request
// layer.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key must not be empty")
	}
	if !stations.Valid(c.Station) {
		return fmt.Errorf("unknown station code %q", c.Station)
	}
	c.Station = strings.ToLower(c.Station)

	if c.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll_interval_seconds must be positive, got %d", c.PollIntervalSeconds)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	if c.Alert != nil {
		if !stations.Valid(c.Alert.Destination) {
			return fmt.Errorf("alert: unknown destination code %q", c.Alert.Destination)
		}
		if c.Alert.ThresholdMinutes < 0 {
			return fmt.Errorf("alert: threshold_minutes must not be negative, got %d", c.Alert.ThresholdMinutes)
		}
	}

	return nil
}

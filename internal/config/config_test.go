package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mschuldt/bart-mode/internal/api/bart"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	require.NoError(t, err)

	assert.Equal(t, bart.PublicKey, cfg.APIKey)
	assert.Equal(t, "civc", cfg.Station)
	assert.Equal(t, 60, cfg.PollIntervalSeconds)
	assert.Equal(t, time.Minute, cfg.Interval())
	assert.False(t, cfg.Abbreviate)
	assert.Nil(t, cfg.Alert)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
station: DBRK
poll_interval_seconds: 30
abbreviate: true
log_level: debug
alert:
  destination: daly
  threshold_minutes: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dbrk", cfg.Station, "station codes normalize to lowercase")
	assert.Equal(t, 30*time.Second, cfg.Interval())
	assert.True(t, cfg.Abbreviate)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NotNil(t, cfg.Alert)
	assert.Equal(t, "daly", cfg.Alert.Destination)
	assert.Equal(t, 5, cfg.Alert.ThresholdMinutes)
	// Unset keys keep their defaults
	assert.Equal(t, bart.PublicKey, cfg.APIKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"unknown station", "station: zzzz\n", "unknown station code"},
		{"zero interval", "poll_interval_seconds: 0\n", "poll_interval_seconds"},
		{"negative interval", "poll_interval_seconds: -5\n", "poll_interval_seconds"},
		{"empty api key", "api_key: \"\"\n", "api_key"},
		{"bad log level", "log_level: shout\n", "log_level"},
		{"bad alert destination", "alert:\n  destination: zzzz\n", "destination code"},
		{"negative threshold", "alert:\n  destination: daly\n  threshold_minutes: -1\n", "threshold_minutes"},
		{"not yaml", "station: [unclosed\n", "parsing config file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

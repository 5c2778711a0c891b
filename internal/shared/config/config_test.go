package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/dvcwatch/availability-alerts/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
database_path: /tmp/test-alerts.db
poll_interval: 60
alerts:
  - name: Summer Trip
    start_date: "2026-08-01"
    end_date: "2026-08-05"
    room_type: Studio
    exclude_non_wdw: true
    resort_names:
      - Bay Lake
      - Riviera
    pushover:
      user_key: u123
      api_token: t456
  - start_date: "2026-12-20"
    end_date: "2026-12-27"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-alerts.db", cfg.DatabasePath)
	assert.Equal(t, 60, cfg.PollInterval)
	require.Len(t, cfg.Alerts, 2)

	first := cfg.Alerts[0]
	assert.Equal(t, "Summer Trip", first.Name)
	assert.Equal(t, "2026-08-01", first.StartDate)
	assert.Equal(t, "Studio", first.RoomType)
	assert.True(t, first.ExcludeNonWDW)
	assert.Equal(t, []string{"Bay Lake", "Riviera"}, first.ResortNames)
	require.NotNil(t, first.Pushover)
	assert.Equal(t, "u123", first.Pushover.UserKey)
	assert.Equal(t, "t456", first.Pushover.APIToken)

	// An unnamed alert gets the default name.
	assert.Equal(t, DefaultAlertName, cfg.Alerts[1].Name)
	assert.False(t, cfg.Alerts[1].ExcludeNonWDW)
	assert.Nil(t, cfg.Alerts[1].Pushover)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
alerts:
  - name: Test
    start_date: "2026-08-01"
    end_date: "2026-08-05"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alerts.db", cfg.DatabasePath)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 300, cfg.PollInterval)
	assert.Equal(t, 30, cfg.FetchTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, apperrors.ErrConfigNotFound)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.ini", "alerts=none")
	_, err := Load(path)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestLoadWithoutAlerts(t *testing.T) {
	path := writeConfig(t, "config.yaml", `database_path: x.db`)
	_, err := Load(path)
	assert.ErrorIs(t, err, apperrors.ErrNoAlerts)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"alerts": [
			{"name": "Test", "start_date": "2026-08-01", "end_date": "2026-08-05"}
		]
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Alerts, 1)
	assert.Equal(t, "Test", cfg.Alerts[0].Name)
}

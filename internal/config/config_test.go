package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATA_SOURCE", SourceFixtures)
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, SourceFixtures, cfg.DataSource)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.ConnectionPollInterval)
	assert.Equal(t, 15*time.Second, cfg.AlertPollInterval)
	assert.Equal(t, 60, cfg.ConditionThreshold)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATA_SOURCE", SourcePostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATA_SOURCE", SourcePostgres)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/roads")
	t.Setenv("CONDITION_THRESHOLD", "75")
	t.Setenv("REFRESH_INTERVAL", "10s")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.ConditionThreshold)
	assert.Equal(t, 10*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown source":     {"DATA_SOURCE": "csv"},
		"threshold too high": {"DATA_SOURCE": SourceFixtures, "CONDITION_THRESHOLD": "101"},
		"zero interval":      {"DATA_SOURCE": SourceFixtures, "ALERT_POLL_INTERVAL": "0s"},
		"zero pool size":     {"DATA_SOURCE": SourceFixtures, "DB_MAX_CONNS": "0"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

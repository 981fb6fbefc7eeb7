package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, ":8080", cfg.Telegram.ListenAddr)
	assert.Empty(t, cfg.Telegram.WebhookURL)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "10:00", cfg.Broadcast.Time)
	assert.Equal(t, "Europe/Moscow", cfg.Broadcast.Timezone)
	assert.NotEmpty(t, cfg.Broadcast.Text)
}

func TestLoadConfigMissingTokenFails(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("BASE_URL", "https://bot.example.com/")
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_URL", "redis://:secret@redis.example.com:6380/2")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://bot.example.com", cfg.Telegram.WebhookURL)
	assert.Equal(t, ":9000", cfg.Telegram.ListenAddr)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "redis.example.com:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, "secret", cfg.Storage.Redis.Password)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
}

func TestLoadConfigDatabaseURLSelectsPostgres(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://bot:pw@db.example.com:5433/power")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.Equal(t, "db.example.com", cfg.Storage.Database.Host)
	assert.Equal(t, 5433, cfg.Storage.Database.Port)
	assert.Equal(t, "bot", cfg.Storage.Database.User)
	assert.Equal(t, "pw", cfg.Storage.Database.Password)
	assert.Equal(t, "power", cfg.Storage.Database.DBName)
	assert.Equal(t, "disable", cfg.Storage.Database.SSLMode)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
telegram:
  token: "456:def"
storage:
  backend: memory
broadcast:
  time: "08:30"
  timezone: "UTC"
  text: "Доброе утро!"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "456:def", cfg.Telegram.Token)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "08:30", cfg.Broadcast.Time)
	assert.Equal(t, "UTC", cfg.Broadcast.Timezone)
	assert.Equal(t, "Доброе утро!", cfg.Broadcast.Text)
}

func TestParseRedisURL(t *testing.T) {
	redisConfig, err := parseRedisURL("redis://localhost:6379")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", redisConfig.Addr)
	assert.Empty(t, redisConfig.Password)
	assert.Equal(t, 0, redisConfig.DB)

	_, err = parseRedisURL("redis://localhost:6379/notanumber")
	assert.Error(t, err)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munteanooo/telegram-restaurant-bot/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.BackendFile, cfg.Store.Backend)
	assert.Equal(t, "restaurant_data.json", cfg.Store.Path)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "restobot:session:", cfg.Store.Redis.Prefix)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9090"
log_level: debug
store:
  backend: redis
  redis:
    addr: redis.internal:6379
    db: 2
    ttl: 24h
    lock: true
contacts:
  phone: "+40 700 000 000"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, config.Duration(24*time.Hour), cfg.Store.Redis.TTL)
	assert.True(t, cfg.Store.Redis.Lock)
	assert.Equal(t, "+40 700 000 000", cfg.Contacts.Phone)

	// Untouched fields keep their defaults.
	assert.Equal(t, "restaurant_data.json", cfg.Store.Path)
	assert.Equal(t, "restobot:session:", cfg.Store.Redis.Prefix)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: cassandra
`)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}

func TestValidate_RedisBackendNeedsAddr(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: redis
  redis:
    addr: ""
`)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires redis.addr")
}

func TestValidate_EmptyListenAddr(t *testing.T) {
	path := writeConfig(t, `listen_addr: ""`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

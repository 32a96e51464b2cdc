package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SIMULATE_LATENCY", "")
	t.Setenv("REDIS_DB", "")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.True(t, cfg.SimulateLatency)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("SIMULATE_LATENCY", "false")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SERVER_PORT", "9000")

	cfg := Load()

	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.False(t, cfg.SimulateLatency)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "9000", cfg.ServerPort)
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	t.Setenv("SIMULATE_LATENCY", "sometimes")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.SimulateLatency)
}

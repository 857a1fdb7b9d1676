package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "STORAGE", "RUN_ADDRESS", "PORT", "DATABASE_URI", "MIGRATIONS_PATH", "LOG_LEVEL", "RESET_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load(viper.New())

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, defaultDatabase, cfg.DB.DatabaseURI)
	assert.Empty(t, cfg.DB.Migrations)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("STORAGE", "Memory")
	t.Setenv("RUN_ADDRESS", "127.0.0.1:9000")
	t.Setenv("DATABASE_URI", "postgres://db/journal")
	t.Setenv("MIGRATIONS_PATH", "/srv/migrations")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RESET_DB", "1")

	cfg := Load(viper.New())

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.RunAddress)
	assert.Equal(t, "postgres://db/journal", cfg.DB.DatabaseURI)
	assert.Equal(t, "/srv/migrations", cfg.DB.Migrations)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.True(t, cfg.ResetDB)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "")
	t.Setenv("PORT", "3000")

	cfg := Load(viper.New())
	assert.Equal(t, ":3000", cfg.Server.RunAddress)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"  ", false},
		{"false", false},
		{"0", false},
		{"true", true},
		{"1", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, truthy(tt.in))
		})
	}
}

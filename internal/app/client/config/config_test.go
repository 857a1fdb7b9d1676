package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "paths inside config dir",
			env:  map[string]string{"CONFIG_DIR": dir, "TOKEN_PATH": "", "CACHE_PATH": "", "SERVER_ADDRESS": "", "ENABLE_TLS": ""},
			want: Config{
				ServerAddress: defaultServerAddress,
				ConfigDir:     dir,
				TokenPath:     filepath.Join(dir, "token"),
				CachePath:     filepath.Join(dir, "cache.db"),
			},
		},
		{
			name: "explicit paths",
			env: map[string]string{
				"CONFIG_DIR":     dir,
				"TOKEN_PATH":     "/tmp/jb-token",
				"CACHE_PATH":     "/tmp/jb-cache.db",
				"SERVER_ADDRESS": "journal.example:443",
				"ENABLE_TLS":     "true",
			},
			want: Config{
				ServerAddress: "journal.example:443",
				ConfigDir:     dir,
				TokenPath:     "/tmp/jb-token",
				CachePath:     "/tmp/jb-cache.db",
				EnableTLS:     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(viper.New())
			require.NoError(t, err)

			assert.Equal(t, tt.want.ServerAddress, cfg.ServerAddress)
			assert.Equal(t, tt.want.ConfigDir, cfg.ConfigDir)
			assert.Equal(t, tt.want.TokenPath, cfg.TokenPath)
			assert.Equal(t, tt.want.CachePath, cfg.CachePath)
			assert.Equal(t, tt.want.EnableTLS, cfg.EnableTLS)
		})
	}
}

func TestConfig_BaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", (&Config{ServerAddress: "localhost:8080"}).BaseURL())
	assert.Equal(t, "https://journal.example", (&Config{ServerAddress: "journal.example", EnableTLS: true}).BaseURL())
}

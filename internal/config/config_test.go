package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "lock-logger.db", cfg.DatabaseDSN)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Empty(t, cfg.AssetOrigin)
	assert.Equal(t, "v1", cfg.AssetVersion)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides selected fields",
			args: []string{"cmd", "-d", "other.db", "-l", "127.0.0.1:9999", "-t", "30"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "other.db", cfg.DatabaseDSN)
				assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
				assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
				// Untouched flags keep their defaults.
				assert.Equal(t, ".", cfg.ExportDir)
			},
		},
		{
			name:        "non-numeric timeout panics",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			tt.check(t, cfg)
		})
	}
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overlays from file, partial keeps defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"asset_origin":  "https://locklogger.example",
			"fetch_timeout": "15s",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://locklogger.example", cfg.AssetOrigin)
		assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "lock-logger.db", cfg.DatabaseDSN)
	})

	t.Run("no config flag leaves values alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabaseDSN: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.DatabaseDSN)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

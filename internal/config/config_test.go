package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr = "127.0.0.1:9090"
lut_path = "/var/lib/blzcheck/blz.lut"
db_path = "/var/lib/blzcheck/banks.db"
log_level = "debug"
`), 0644))

	cfg, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "/var/lib/blzcheck/blz.lut", cfg.LUTPath)
	assert.Equal(t, "/var/lib/blzcheck/banks.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadServerDefaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := LoadServer("")
		require.NoError(t, err)
		assert.Equal(t, DefaultServer(), cfg)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.toml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := LoadServer(path)
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.DBPath)
		assert.NotEmpty(t, cfg.LUTPath)
	})

	t.Run("blank values keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.toml")
		require.NoError(t, os.WriteFile(path, []byte(`addr = "  "`), 0644))

		cfg, err := LoadServer(path)
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
	})
}

func TestLoadServerErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadServer(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.toml")
		require.NoError(t, os.WriteFile(path, []byte(`addr = [`), 0644))
		_, err := LoadServer(path)
		assert.Error(t, err)
	})
}

func TestDefaultLUTPath(t *testing.T) {
	assert.NotEmpty(t, DefaultLUTPath())
}

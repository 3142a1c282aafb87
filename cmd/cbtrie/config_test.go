package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		require.Equal(t, Config{LogLevel: "info"}, cfg)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := loadConfig(writeFile(t, "empty.yml", ""))
		require.NoError(t, err)
		require.Equal(t, Config{LogLevel: "info"}, cfg)
	})

	t.Run("full", func(t *testing.T) {
		cfg, err := loadConfig(writeFile(t, "full.yml", `
LogLevel: debug
PoolLimit: 100
SlabSize: 16
Keys:
  - a.txt
  - b.txt
`))
		require.NoError(t, err)
		require.Equal(t, Config{
			LogLevel:  "debug",
			PoolLimit: 100,
			SlabSize:  16,
			Keys:      []string{"a.txt", "b.txt"},
		}, cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := loadConfig(writeFile(t, "bad.yml", "PoolSize: 1\n"))
		require.ErrorContains(t, err, "failed to unmarshal config YAML")
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := loadConfig(writeFile(t, "neg.yml", "PoolLimit: -1\n"))
		require.ErrorIs(t, err, errNegative)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	log, err := newLogger("warn", false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(-1))
	require.True(t, log.Core().Enabled(1))

	log, err = newLogger("warn", true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(-1))

	_, err = newLogger("loud", false)
	require.ErrorContains(t, err, "log setting")
}

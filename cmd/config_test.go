package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "itk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "jsonl", c.Store.Kind)
	assert.Equal(t, ".itk", c.Store.Path)
	assert.Equal(t, "USD", c.Currency)
	assert.Equal(t, "month", c.Granularity)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
store:
  kind: sqlite
  path: data.db
currency: EUR
granularity: week
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", c.Store.Kind)
	assert.Equal(t, "data.db", c.Store.Path)
	assert.Equal(t, "EUR", c.Currency)
	assert.Equal(t, "week", c.Granularity)
	assert.Equal(t, "warn", c.Log.Level, "unset fields keep their default")
}

func TestLoadConfig_Env(t *testing.T) {
	path := writeConfig(t, "store:\n  path: from-file\n")
	t.Setenv("ITK_STORE", "from-env")
	t.Setenv("ITK_STORE_KIND", "sqlite")
	t.Setenv("ITK_LOG_LEVEL", "debug")

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", c.Store.Path)
	assert.Equal(t, "sqlite", c.Store.Kind)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"kind":        "store:\n  kind: csv\n",
		"granularity": "granularity: quarter\n",
		"currency":    "currency: euro\n",
		"log level":   "log:\n  level: loud\n",
		"yaml":        "store: [",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(LogConfig{Level: "info", Format: "json"})
	assert.NoError(t, err)

	_, err = newLogger(LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

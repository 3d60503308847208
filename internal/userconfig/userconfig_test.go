package userconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialog.toml")
	content := `
logging_level = "DEBUG"
logging_format = 2
verbose_level = 3
runtime_warnings = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "DEBUG", cfg.LoggingLevel)
	require.Equal(t, 2, cfg.LoggingFormat)
	require.NotNil(t, cfg.VerboseLevel)
	require.Equal(t, 3, *cfg.VerboseLevel)
	require.False(t, cfg.RuntimeWarnings)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialog.toml")
	require.NoError(t, os.WriteFile(path, []byte("logging_format = =\n"), 0644))

	_, err := loadFromPath(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dialog.toml")

	cfg := DefaultConfig()
	require.NoError(t, cfg.Set("logging_level", "info"))
	require.NoError(t, cfg.Set("verbose_level", "2"))
	require.NoError(t, cfg.saveToPath(path))

	loaded, err := loadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "INFO", loaded.LoggingLevel)
	require.NotNil(t, loaded.VerboseLevel)
	require.Equal(t, 2, *loaded.VerboseLevel)
}

func TestSetRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()

	require.Error(t, cfg.Set("logging_level", "TRACE"))
	require.Error(t, cfg.Set("logging_format", "0"))
	require.Error(t, cfg.Set("verbose_level", "high"))
	require.Error(t, cfg.Set("runtime_warnings", "maybe"))
	require.Error(t, cfg.Set("no_such_key", "1"))
}

func TestGet(t *testing.T) {
	cfg := DefaultConfig()

	v, ok := cfg.Get("runtime_warnings")
	require.True(t, ok)
	require.Equal(t, "true", v)

	v, ok = cfg.Get("verbose_level")
	require.True(t, ok)
	require.Equal(t, "", v)

	_, ok = cfg.Get("bogus")
	require.False(t, ok)
}

func TestAvailableKeysMatchGet(t *testing.T) {
	cfg := DefaultConfig()
	for key := range AvailableKeys() {
		_, ok := cfg.Get(key)
		require.True(t, ok, "key %s listed but not gettable", key)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300.0, cfg.Carousel.ItemWidth)
	assert.Equal(t, 24.0, cfg.Carousel.ItemSpacing)
	assert.Equal(t, 101, cfg.Carousel.ItemCount)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Carousel, cfg.Carousel)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "excarousel", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
[carousel]
item_width = 240
item_count = 12
seed = 7

[ui]
width = 800
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 240.0, cfg.Carousel.ItemWidth)
	assert.Equal(t, 12, cfg.Carousel.ItemCount)
	assert.Equal(t, int64(7), cfg.Carousel.Seed)
	assert.Equal(t, 800, cfg.UI.Width)
	// Unset keys keep their defaults.
	assert.Equal(t, 24.0, cfg.Carousel.ItemSpacing)
	assert.Equal(t, 720, cfg.UI.Height)
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "excarousel", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[carousel\nitem_width = "), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "excarousel", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[carousel]\ndim_amount = 3.0\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dim_amount")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Carousel.ItemCount = 9
	cfg.UI.Debug = true
	require.NoError(t, cfg.Save())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveSeed_KeepsFileValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "excarousel", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[carousel]\nitem_width = 240\n"), 0o644))

	require.NoError(t, SaveSeed(42))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Carousel.Seed)
	assert.Equal(t, 240.0, cfg.Carousel.ItemWidth)
}

func TestSaveSeed_SkipsEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvItemCount, "5")

	require.NoError(t, SaveSeed(9))

	onDisk := DefaultConfig()
	require.NoError(t, onDisk.readFile(filepath.Join(dir, "excarousel", "config.toml")))
	assert.Equal(t, int64(9), onDisk.Carousel.Seed)
	assert.Equal(t, DefaultConfig().Carousel.ItemCount, onDisk.Carousel.ItemCount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.UI.Width = 0 }, "window size"},
		{"count", func(c *Config) { c.Carousel.ItemCount = -1 }, "item_count"},
		{"height", func(c *Config) { c.Carousel.ItemHeight = 0 }, "item_height"},
		{"dim", func(c *Config) { c.Carousel.DimAmount = -0.1 }, "dim_amount"},
		{"decel", func(c *Config) { c.Carousel.Deceleration = 1 }, "deceleration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		EnvItemCount:  "3",
		EnvSeed:       "-12",
		EnvFullscreen: "true",
		EnvDebug:      "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Carousel.ItemCount)
	assert.Equal(t, int64(-12), cfg.Carousel.Seed)
	assert.True(t, cfg.UI.Fullscreen)
	assert.True(t, cfg.UI.Debug)
}

func TestApplyEnv_Unparseable(t *testing.T) {
	for _, key := range []string{EnvItemCount, EnvSeed, EnvFullscreen, EnvDebug} {
		cfg := DefaultConfig()
		err := cfg.ApplyEnv(mapLookup(map[string]string{key: "nope"}))
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("EXCAROUSEL_TEST_DOTENV=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("EXCAROUSEL_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("EXCAROUSEL_TEST_DOTENV"))
}

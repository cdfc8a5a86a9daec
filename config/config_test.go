package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/palette"
	"github.com/scottkirkwood/posy/poster"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posy.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, ".png", cfg.Ext())
	require.Equal(t, poster.Options{}, cfg.PosterOptions())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
width = 640
height = 480
seed = "1f"
flowers = 2
palette = "light"
format = "svg"
debounce = "1s"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 640.0, cfg.Width)
	require.Equal(t, 480.0, cfg.Height)
	require.Equal(t, "1f", cfg.Seed)
	require.Equal(t, Duration(time.Second), cfg.Debounce)
	require.Equal(t, "samples/posy-", cfg.Output)
	require.Equal(t, poster.Options{Flowers: 2, Palette: palette.Light}, cfg.PosterOptions())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, `colour = "red"`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "colour")

	_, err = Load(writeConfig(t, `debounce = "soon"`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	intp := func(v int) *int { return &v }
	tests := []struct {
		name   string
		change func(*Config)
		target error
	}{
		{"zero canvas", func(c *Config) { c.Width, c.Height = 0, 0 }, ErrEmptyCanvas},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrEmptyCanvas},
		{"zero flowers", func(c *Config) { c.Flowers = intp(0) }, poster.ErrFlowerCount},
		{"five flowers", func(c *Config) { c.Flowers = intp(5) }, poster.ErrFlowerCount},
		{"unknown palette", func(c *Config) { c.Palette = "sepia" }, palette.ErrUnknownPalette},
		{"unknown format", func(c *Config) { c.Format = "gif" }, posy.ErrUnknownFormat},
		{"negative debounce", func(c *Config) { c.Debounce = -1 }, ErrDebounce},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.change(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.target)
		})
	}
}

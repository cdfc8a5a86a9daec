package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/config"
	"github.com/stretchr/testify/require"
)

func TestPoster(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 200, 250
	cfg.Format = "svg"
	cfg.Output = filepath.Join(t.TempDir(), "posy-")

	seed, err := posy.Init("5eed")
	require.NoError(t, err)
	fname, p, err := Poster(cfg, seed)
	require.NoError(t, err)
	require.FileExists(t, fname)
	require.GreaterOrEqual(t, p.Count(), 1)

	again, q, err := Poster(cfg, seed)
	require.NoError(t, err)
	require.Equal(t, fname, again)
	require.Equal(t, p, q)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestPosterRejectsEmptyCanvas(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 0
	cfg.Output = filepath.Join(t.TempDir(), "posy-")
	seed, _ := posy.Init("1")
	_, _, err := Poster(cfg, seed)
	require.ErrorIs(t, err, config.ErrEmptyCanvas)

	entries, err := os.ReadDir(filepath.Dir(cfg.Output))
	require.NoError(t, err)
	require.Empty(t, entries)
}

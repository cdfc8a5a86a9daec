// Package config loads the settings posters are generated with.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/palette"
	"github.com/scottkirkwood/posy/poster"
)

var (
	ErrEmptyCanvas = errors.New("canvas width and height must be positive")
	ErrDebounce    = errors.New("debounce must not be negative")
)

// Duration is a time.Duration written as "250ms" in TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is everything a render, view or watch run needs.
type Config struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Seed is a hex seed, empty for one based on the clock.
	Seed string `toml:"seed"`
	// Flowers pins the flower count when set.
	Flowers *int `toml:"flowers"`
	// Palette pins the palette when set.
	Palette string `toml:"palette"`
	// Output is the filename prefix; the git hash, seed and extension follow.
	Output string `toml:"output"`
	Format string `toml:"format"`
	// Debounce is how long resizes or config edits must settle before a
	// new poster is made.
	Debounce Duration `toml:"debounce"`
	LogLevel string   `toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:    800,
		Height:   1000,
		Output:   "samples/posy-",
		Format:   "png",
		Debounce: Duration(250 * time.Millisecond),
		LogLevel: "info",
	}
}

// Load reads a TOML file over the defaults. Unknown keys are an error.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a poster.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w, got %gx%g", ErrEmptyCanvas, c.Width, c.Height)
	}
	if c.Debounce < 0 {
		return ErrDebounce
	}
	if err := c.PosterOptions().Validate(); err != nil {
		return err
	}
	// An explicit zero reads as "random" to the poster, so check it here.
	if c.Flowers != nil && *c.Flowers == 0 {
		return fmt.Errorf("%w, got 0", poster.ErrFlowerCount)
	}
	if !knownFormat(c.Format) {
		return fmt.Errorf("%w %q, want one of %s", posy.ErrUnknownFormat, c.Format, strings.Join(posy.Formats(), ", "))
	}
	return nil
}

// Ext is the output extension including the dot.
func (c Config) Ext() string {
	return "." + strings.TrimPrefix(strings.ToLower(c.Format), ".")
}

// PosterOptions turns the pinned choices into poster options.
func (c Config) PosterOptions() poster.Options {
	opts := poster.Options{Palette: palette.ID(c.Palette)}
	if c.Flowers != nil {
		opts.Flowers = *c.Flowers
	}
	return opts
}

func knownFormat(format string) bool {
	format = strings.TrimPrefix(strings.ToLower(format), ".")
	for _, f := range posy.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

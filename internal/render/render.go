// Package render turns a config and seed into a poster file.
package render

import (
	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/config"
	"github.com/scottkirkwood/posy/poster"
)

// Poster draws a poster for cfg with seed and saves it. The same config and
// seed always give the same picture.
func Poster(cfg config.Config, seed posy.Seed) (string, *poster.Poster, error) {
	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}
	target, err := posy.NewTarget(cfg.Format, cfg.Width, cfg.Height)
	if err != nil {
		return "", nil, err
	}
	p, err := poster.Generate(target, seed.Rand(), cfg.PosterOptions())
	if err != nil {
		return "", nil, err
	}
	log.Info().Str("seed", seed.Hex()).Object("poster", p).Msg("generated poster")
	fname, err := seed.SafeWrite(target, cfg.Output, cfg.Ext())
	return fname, p, err
}

package viewer

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/config"
	"github.com/scottkirkwood/posy/internal/render"
	"github.com/scottkirkwood/posy/poster"
)

// session is the state behind the window: the render context, the seed that
// made the poster on show, and the poster itself.
type session struct {
	cfg    config.Config
	seed   posy.Seed
	raster *posy.Raster
	poster *poster.Poster
}

func newSession(cfg config.Config, seed posy.Seed) *session {
	return &session{cfg: cfg, seed: seed}
}

// draw paints a poster for the current seed at width x height, replacing
// the raster when the size changed.
func (s *session) draw(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: window is %dx%d", poster.ErrEmptyCanvas, width, height)
	}
	if s.raster == nil {
		s.raster = posy.NewRaster(width, height)
	} else if w, h := s.raster.Size(); int(w) != width || int(h) != height {
		s.raster = posy.NewRaster(width, height)
	}
	p, err := poster.Generate(s.raster, s.seed.Rand(), s.cfg.PosterOptions())
	if err != nil {
		return err
	}
	s.poster = p
	s.cfg.Width, s.cfg.Height = float64(width), float64(height)
	log.Info().Str("seed", s.seed.Hex()).Object("poster", p).Msg("generated poster")
	return nil
}

// next moves to a fresh seed and draws again.
func (s *session) next(width, height int) error {
	s.seed = s.seed.Next()
	return s.draw(width, height)
}

// save writes the poster on show in the configured format. The seed and
// size reproduce it exactly.
func (s *session) save() (string, error) {
	if s.poster == nil {
		return "", fmt.Errorf("nothing drawn yet")
	}
	fname, _, err := render.Poster(s.cfg, s.seed)
	return fname, err
}

// Package viewer shows posters in a window and regenerates them on demand.
package viewer

import (
	"image"
	"image/draw"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/config"
	"github.com/scottkirkwood/posy/internal/debounce"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// regenerateEvent is sent to the window once resizing settles.
type regenerateEvent struct{}

// Run opens a window showing a poster for cfg, starting from seed.
// Any key makes a new poster, S saves the one on show, Q or Escape quits.
// Resizing the window makes a new poster at the new size.
func Run(cfg config.Config, seed posy.Seed) error {
	var err error
	driver.Main(func(s screen.Screen) {
		err = run(s, newSession(cfg, seed), time.Duration(cfg.Debounce))
	})
	return err
}

func run(s screen.Screen, ss *session, delay time.Duration) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  int(ss.cfg.Width),
		Height: int(ss.cfg.Height),
	})
	if err != nil {
		return err
	}
	defer w.Release()

	resized := debounce.New(delay, func() { w.Send(regenerateEvent{}) })
	defer resized.Stop()

	var (
		sz  size.Event
		buf screen.Buffer
	)
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	redraw := func(drawn error) {
		if drawn != nil {
			log.Warn().Err(drawn).Msg("no poster")
			return
		}
		w.Send(paint.Event{})
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			switch e.Code {
			case key.CodeEscape, key.CodeQ:
				return nil
			case key.CodeS:
				if _, err := ss.save(); err != nil {
					log.Error().Err(err).Msg("save failed")
				}
			default:
				redraw(ss.next(sz.WidthPx, sz.HeightPx))
			}

		case size.Event:
			first := sz.WidthPx == 0 && sz.HeightPx == 0
			sz = e
			if first {
				redraw(ss.draw(sz.WidthPx, sz.HeightPx))
			} else {
				resized.Trigger()
			}

		case regenerateEvent:
			redraw(ss.next(sz.WidthPx, sz.HeightPx))

		case paint.Event:
			if ss.raster == nil {
				continue
			}
			img := ss.raster.Image()
			if buf == nil || buf.Size() != img.Bounds().Size() {
				if buf != nil {
					buf.Release()
				}
				if buf, err = s.NewBuffer(img.Bounds().Size()); err != nil {
					return err
				}
			}
			draw.Draw(buf.RGBA(), buf.Bounds(), img, image.Point{}, draw.Src)
			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()

		case mouse.Event:

		case error:
			log.Error().Err(e).Msg("screen error")
			return e
		}
	}
}

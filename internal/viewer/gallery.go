package viewer

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/posy"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const (
	maxGalleryWidth  = 1000
	maxGalleryHeight = 768
)

// ErrNoImages is returned when none of the gallery files could be decoded.
var ErrNoImages = errors.New("no images could be shown")

// Gallery pages through saved posters. Left and right arrows move, R fits
// the window to the image, Q or Escape quits.
func Gallery(files []string) error {
	// Decode all images (in parallel).
	names, imgs := posy.DecodeImages(files)
	if len(imgs) == 0 {
		return ErrNoImages
	}
	var err error
	driver.Main(func(s screen.Screen) {
		err = gallery(s, names, imgs)
	})
	return err
}

// windowSize sizes the window to img, up to a limit.
func windowSize(img image.Image) image.Point {
	rect := img.Bounds()
	winSize := image.Point{X: rect.Dx(), Y: rect.Dy()}
	if winSize.X > maxGalleryWidth {
		winSize.X = maxGalleryWidth
	}
	if winSize.Y > maxGalleryHeight {
		winSize.Y = maxGalleryHeight
	}
	return winSize
}

func gallery(s screen.Screen, names []string, imgs []image.Image) error {
	winSize := windowSize(imgs[0])
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  winSize.X,
		Height: winSize.Y,
	})
	if err != nil {
		return err
	}
	defer w.Release()

	b, err := s.NewBuffer(winSize)
	if err != nil {
		return err
	}
	defer func() { b.Release() }()

	w.Fill(b.Bounds(), color.White, draw.Src)
	w.Publish()

	var sz size.Event
	var i int // index of image to display
	for {
		switch e := w.NextEvent().(type) {
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			switch e.Code {
			case key.CodeEscape, key.CodeQ:
				return nil
			case key.CodeRightArrow:
				i = (i + 1) % len(imgs)
			case key.CodeLeftArrow:
				i = (i + len(imgs) - 1) % len(imgs)
			case key.CodeR:
				// resize to current image
				r := imgs[i].Bounds()
				sz.WidthPx, sz.HeightPx = r.Dx(), r.Dy()
			default:
				continue
			}
			b.Release()
			if b, err = s.NewBuffer(sz.Size()); err != nil {
				return err
			}
			log.Debug().Str("file", names[i]).Msg("showing")
			w.Send(paint.Event{})

		case paint.Event:
			img := imgs[i]
			draw.Draw(b.RGBA(), b.Bounds(), img, image.Point{}, draw.Src)
			dp := posy.VpCenter(img, sz.WidthPx, sz.HeightPx)
			if dp != (image.Point{}) {
				w.Fill(sz.Bounds(), color.Black, draw.Src)
			}
			w.Upload(dp, b, b.Bounds())
			w.Publish()

		case size.Event:
			sz = e

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case error:
			log.Error().Err(e).Msg("screen error")
			return e
		}
	}
}

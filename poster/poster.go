// Package poster composes several flowers rooted at the same spot, fading
// the ones further back into the canvas.
package poster

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/rs/zerolog"
	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/flower"
	"github.com/scottkirkwood/posy/geom"
	"github.com/scottkirkwood/posy/palette"
	"github.com/scottkirkwood/posy/rng"
)

const (
	MinFlowers = 1
	MaxFlowers = 4

	// MaxTint is how far the rearmost flower fades toward the canvas.
	MaxTint = 0.7
)

var (
	ErrEmptyCanvas = errors.New("canvas has no area")
	ErrFlowerCount = fmt.Errorf("flower count must be in [%d,%d]", MinFlowers, MaxFlowers)
)

// Options pin choices that would otherwise be random.
type Options struct {
	// Flowers is the flower count, 0 to pick one at random.
	Flowers int
	// Palette is the palette to paint with, "" to pick one at random.
	Palette palette.ID
}

// Validate reports options that cannot make a poster.
func (o Options) Validate() error {
	if o.Flowers != 0 && (o.Flowers < MinFlowers || o.Flowers > MaxFlowers) {
		return fmt.Errorf("%w, got %d", ErrFlowerCount, o.Flowers)
	}
	if o.Palette != "" {
		if _, err := palette.Lookup(o.Palette); err != nil {
			return err
		}
	}
	return nil
}

// Poster is one generated picture, kept around for inspection.
type Poster struct {
	Palette    palette.ID
	Background color.RGBA
	// Flowers in the order they were drawn, rearmost first.
	Flowers []*Flower
}

// Flower is a flower and how deep in the poster it sits, 0 being the front.
type Flower struct {
	*flower.Flower
	Depth int
}

// Count is the number of flowers.
func (p *Poster) Count() int { return len(p.Flowers) }

// Tint returns the fade for the flower at depth of count. The front flower
// is never faded and the rearmost fades by MaxTint.
func Tint(depth, count int) float64 {
	if count <= 1 {
		return 0
	}
	return posy.Remap(float64(depth), 0, float64(count-1), 0, MaxTint)
}

// Tints returns Tint for every depth of count, front first.
func Tints(count int) []float64 {
	tints := make([]float64, count)
	for i := range tints {
		tints[i] = Tint(i, count)
	}
	return tints
}

// Generate paints a new poster on r. Nothing is drawn if the canvas or
// options are unusable.
func Generate(r posy.Renderer, src rng.Source, opts Options) (*Poster, error) {
	width, height := r.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrEmptyCanvas, width, height)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	count := opts.Flowers
	if count == 0 {
		count = rng.IntRange(src, MinFlowers, MaxFlowers+1)
	}
	id := opts.Palette
	if id == "" {
		id = palette.ID(rng.Choose(src, palette.IDs()))
	}
	pal, err := palette.Lookup(id)
	if err != nil {
		return nil, err
	}

	p := &Poster{
		Palette:    id,
		Background: pal.Canvas,
		Flowers:    make([]*Flower, 0, count),
	}
	r.Background(p.Background)

	start := geom.Pt(width/2, height)
	for depth := count - 1; depth >= 0; depth-- {
		f, err := flower.New(src, flower.Options{
			Start:   start,
			Tint:    Tint(depth, count),
			Palette: id,
			Width:   width,
			Height:  height,
		})
		if err != nil {
			return nil, err
		}
		f.Draw(r)
		p.Flowers = append(p.Flowers, &Flower{Flower: f, Depth: depth})
	}
	return p, nil
}

// MarshalZerologObject logs the poster and its flowers.
func (p *Poster) MarshalZerologObject(e *zerolog.Event) {
	flowers := zerolog.Arr()
	for _, f := range p.Flowers {
		flowers.Object(f)
	}
	e.Int("flowers", p.Count()).
		Str("palette", string(p.Palette)).
		Array("drawn", flowers)
}

// MarshalZerologObject adds the depth to the flower's fields.
func (f *Flower) MarshalZerologObject(e *zerolog.Event) {
	e.Int("depth", f.Depth)
	f.Flower.MarshalZerologObject(e)
}

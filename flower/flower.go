// Package flower grows a single stem of chained Bézier segments topped with
// a bulb.
package flower

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/rs/zerolog"
	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/geom"
	"github.com/scottkirkwood/posy/palette"
	"github.com/scottkirkwood/posy/rng"
)

const (
	// StemWeight is the stroke width of every stem.
	StemWeight = 8

	MinSegments    = 1
	MaxSegments    = 10
	segmentsMean   = 2.5
	segmentsStdDev = 3

	minStartAngle = -22.5 // degrees off vertical
	maxStartAngle = 22.5
)

var (
	ErrEmptyCanvas = errors.New("canvas has no area")
	ErrTint        = errors.New("tint out of [0,1]")
)

// Options place a flower on its poster.
type Options struct {
	// Start is where the stem is rooted.
	Start geom.Point
	// Tint fades the flower into the canvas, 0 not at all, 1 completely.
	Tint    float64
	Palette palette.ID
	// Width and Height bound the random anchors and controls.
	Width, Height float64
}

// Flower is a finished stem and its bulb. It is not changed after New.
type Flower struct {
	Segments   []Segment
	StemLength string
	Bulb       string
	Palette    palette.ID
	PetalName  string
	// Petal is the base petal colour before tinting.
	Petal color.RGBA
	Tint  float64

	stroke color.RGBA
	petal  color.RGBA
}

// New draws every random choice for a flower and builds its stem.
func New(src rng.Source, opts Options) (*Flower, error) {
	pal, err := palette.Lookup(opts.Palette)
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrEmptyCanvas, opts.Width, opts.Height)
	}
	if opts.Tint < 0 || opts.Tint > 1 {
		return nil, fmt.Errorf("%w: %g", ErrTint, opts.Tint)
	}

	f := &Flower{
		Palette:   opts.Palette,
		Tint:      opts.Tint,
		PetalName: rng.Choose(src, palette.PetalNames()),
	}
	f.Petal, _ = palette.Petal(f.PetalName)

	numSegments := rng.ClampedGaussianInt(src, segmentsMean, segmentsStdDev, MinSegments, MaxSegments)
	f.StemLength = rng.Choose(src, StemLengths())
	f.Bulb = rng.Choose(src, Bulbs())

	f.grow(src, opts, numSegments)

	f.stroke = palette.Blend(pal.Stem, pal.Canvas, f.Tint)
	f.petal = palette.Blend(f.Petal, pal.Canvas, f.Tint)
	return f, nil
}

// grow lays out the stem. Only the root and the reflected first control of
// each joint are constrained; everything else wanders over the canvas.
func (f *Flower) grow(src rng.Source, opts Options, numSegments int) {
	length, _ := LookupStemLength(f.StemLength)

	angle := rng.Uniform(src, minStartAngle, maxStartAngle)
	a1 := opts.Start
	c1 := geom.Project(a1, angle, length(src))
	a2 := geom.RandomPoint(src, opts.Width, opts.Height)
	c2 := geom.RandomPoint(src, opts.Width, opts.Height)

	f.Segments = make([]Segment, 0, numSegments)
	f.Segments = append(f.Segments, NewSegment(a1, c1, c2, a2))

	for i := 1; i < numSegments; i++ {
		a2 := geom.RandomPoint(src, opts.Width, opts.Height)
		c2 := geom.RandomPoint(src, opts.Width, opts.Height)
		f.Segments = append(f.Segments, NextSegment(f.Segments[i-1], c2, a2))
	}
}

// StrokeColor is the stem colour after tinting.
func (f *Flower) StrokeColor() color.RGBA { return f.stroke }

// PetalColor is the petal colour after tinting.
func (f *Flower) PetalColor() color.RGBA { return f.petal }

// End is the last anchor of the stem, where the bulb sits.
func (f *Flower) End() geom.Point {
	return f.Segments[len(f.Segments)-1].A2
}

// Draw paints the stem then the bulb. It only reads the flower, so calling
// it again paints the same thing.
func (f *Flower) Draw(r posy.Renderer) {
	r.SetStrokeWidth(StemWeight)
	r.SetStrokeColor(f.stroke)
	r.NoFill()
	for _, s := range f.Segments {
		r.Bezier(s.A1, s.C1, s.C2, s.A2)
	}

	bulb, ok := LookupBulb(f.Bulb)
	if !ok {
		return
	}
	bulb(r, f.End(), f.petal)
}

// MarshalZerologObject logs the flower's choices.
func (f *Flower) MarshalZerologObject(e *zerolog.Event) {
	e.Int("segments", len(f.Segments)).
		Str("stem", f.StemLength).
		Str("bulb", f.Bulb).
		Str("petal", f.PetalName).
		Float64("tint", f.Tint).
		Stringer("end", f.End())
}

package flower

import (
	"image/color"

	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/geom"
	"github.com/scottkirkwood/posy/rng"
)

// StemLength returns how far the first control point sits from the root.
type StemLength func(src rng.Source) float64

// Bulb draws a flower head centred on at.
type Bulb func(r posy.Renderer, at geom.Point, petal color.Color)

// registry keeps variants by name in registration order so that seeded
// choices are reproducible.
type registry[T any] struct {
	names []string
	fns   map[string]T
}

func (reg *registry[T]) register(name string, fn T) {
	if reg.fns == nil {
		reg.fns = make(map[string]T)
	}
	if _, ok := reg.fns[name]; !ok {
		reg.names = append(reg.names, name)
	}
	reg.fns[name] = fn
}

func (reg *registry[T]) lookup(name string) (T, bool) {
	fn, ok := reg.fns[name]
	return fn, ok
}

func (reg *registry[T]) list() []string {
	return append([]string(nil), reg.names...)
}

var (
	stemLengths registry[StemLength]
	bulbs       registry[Bulb]
)

func init() {
	RegisterStemLength("wild", Wild)
	RegisterBulb("daisy", Daisy)
}

// RegisterStemLength adds or replaces a stem length variant.
func RegisterStemLength(name string, fn StemLength) { stemLengths.register(name, fn) }

// RegisterBulb adds or replaces a bulb variant.
func RegisterBulb(name string, fn Bulb) { bulbs.register(name, fn) }

// StemLengths lists stem length variants in registration order.
func StemLengths() []string { return stemLengths.list() }

// Bulbs lists bulb variants in registration order.
func Bulbs() []string { return bulbs.list() }

// LookupBulb returns the bulb called name.
func LookupBulb(name string) (Bulb, bool) { return bulbs.lookup(name) }

// LookupStemLength returns the stem length variant called name.
func LookupStemLength(name string) (StemLength, bool) { return stemLengths.lookup(name) }

const (
	wildMin = 75
	wildMax = 200
)

// Wild picks any length in [75, 200).
func Wild(src rng.Source) float64 {
	return rng.Uniform(src, wildMin, wildMax)
}

const (
	daisyCenter     = 20 // diameter
	daisyPetals     = 10
	daisyPetalSize  = 40
	daisyPetalAngle = 60 // degrees
)

var daisyPetalOffset = geom.Pt(15, 20)

// Daisy is a black centre under a ring of round petals. Ten petals at 60
// degrees go around more than once, so they overlap.
func Daisy(r posy.Renderer, at geom.Point, petal color.Color) {
	r.Push()
	defer r.Pop()

	r.NoStroke()
	r.Translate(at.X, at.Y)
	r.SetFillColor(color.Black)
	r.Circle(geom.Pt(0, 0), daisyCenter)

	r.SetFillColor(petal)
	for i := 0; i < daisyPetals; i++ {
		r.Ellipse(daisyPetalOffset, daisyPetalSize, daisyPetalSize)
		r.Rotate(daisyPetalAngle)
	}
}

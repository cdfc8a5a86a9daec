// Package palette holds the colour tables posters are painted with.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ID names a palette.
type ID string

const (
	Dark  ID = "dark"
	Light ID = "light"
)

// ErrUnknownPalette is returned when a palette ID is not in the table.
var ErrUnknownPalette = errors.New("unknown palette")

// Palette is a canvas colour and the stem colour drawn on it.
type Palette struct {
	Canvas color.RGBA
	Stem   color.RGBA
}

var (
	offBlack = color.RGBA{17, 17, 17, 255}
	offWhite = color.RGBA{250, 249, 246, 255}
)

var palettes = []struct {
	id ID
	p  Palette
}{
	{Dark, Palette{Canvas: offBlack, Stem: offWhite}},
	{Light, Palette{Canvas: offWhite, Stem: offBlack}},
}

// IDs lists the palette names in table order.
func IDs() []string {
	ids := make([]string, len(palettes))
	for i, e := range palettes {
		ids[i] = string(e.id)
	}
	return ids
}

// Lookup returns the palette for id.
func Lookup(id ID) (Palette, error) {
	for _, e := range palettes {
		if e.id == id {
			return e.p, nil
		}
	}
	return Palette{}, fmt.Errorf("%w %q", ErrUnknownPalette, id)
}

var petals = []struct {
	name string
	col  color.RGBA
}{
	{"yellow", color.RGBA{251, 194, 109, 255}},
	{"orange", color.RGBA{245, 125, 98, 255}},
	{"red", color.RGBA{225, 91, 100, 255}},
}

// PetalNames lists the base petal colours in table order.
func PetalNames() []string {
	names := make([]string, len(petals))
	for i, e := range petals {
		names[i] = e.name
	}
	return names
}

// Petal returns the base petal colour called name.
func Petal(name string) (color.RGBA, bool) {
	for _, e := range petals {
		if e.name == name {
			return e.col, true
		}
	}
	return color.RGBA{}, false
}

// Blend moves from toward to by t in RGB space. t=0 gives from, t=1 gives to.
// The result is opaque.
func Blend(from, to color.Color, t float64) color.RGBA {
	c1, _ := colorful.MakeColor(from)
	c2, _ := colorful.MakeColor(to)
	r, g, b := c1.BlendRgb(c2, t).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

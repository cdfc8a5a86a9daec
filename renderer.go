package posy

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/scottkirkwood/posy/geom"
)

// Renderer is the drawing surface flowers and posters paint on.
// Coordinates are in canvas units with y growing downward and angles in
// degrees, clockwise on screen.
type Renderer interface {
	// Size returns the canvas dimensions.
	Size() (width, height float64)
	// Background clears the whole canvas to col.
	Background(col color.Color)

	SetStrokeColor(col color.Color)
	NoStroke()
	SetFillColor(col color.Color)
	NoFill()
	SetStrokeWidth(width float64)

	// Bezier draws a cubic curve from a1 to a2 steered by c1 and c2.
	Bezier(a1, c1, c2, a2 geom.Point)
	Circle(center geom.Point, diameter float64)
	Ellipse(center geom.Point, width, height float64)

	Translate(dx, dy float64)
	Rotate(degrees float64)
	// Push saves the draw state (colours, width, transform); Pop restores it.
	Push()
	Pop()
}

// Target is a Renderer that can save what was drawn.
type Target interface {
	Renderer
	// WriteFile saves the canvas, the format chosen by fname's extension.
	WriteFile(fname string) error
}

// ErrUnknownFormat is returned for an output format no backend can write.
var ErrUnknownFormat = errors.New("unknown output format")

var (
	vectorFormats = []string{"png", "svg", "pdf"}
	rasterFormats = []string{"bmp", "tiff", "jpg"}
)

// Formats lists every output format NewTarget accepts.
func Formats() []string {
	return append(append([]string{}, vectorFormats...), rasterFormats...)
}

// NewTarget returns a backend able to write format ("png", "svg", ...).
// png, svg and pdf are drawn as vectors; bmp, tiff and jpg are rasterized.
func NewTarget(format string, width, height float64) (Target, error) {
	format = strings.TrimPrefix(strings.ToLower(format), ".")
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas %gx%g has no area", width, height)
	}
	for _, f := range vectorFormats {
		if f == format {
			return NewContext(width, height), nil
		}
	}
	for _, f := range rasterFormats {
		if f == format {
			return NewRaster(int(width), int(height)), nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

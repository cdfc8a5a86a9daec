package posy

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/scottkirkwood/posy/geom"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const jpegQuality = 95

type paintState struct {
	stroke   color.Color
	fill     color.Color
	noStroke bool
	noFill   bool
}

// Raster draws onto an in-memory image with gg.
type Raster struct {
	dc    *gg.Context
	state paintState
	stack []paintState
}

var _ Target = (*Raster)(nil)

// NewRaster returns a width x height pixel surface.
func NewRaster(width, height int) *Raster {
	return &Raster{
		dc:    gg.NewContext(width, height),
		state: paintState{stroke: color.Black, fill: color.White},
	}
}

// Image returns the pixels drawn so far.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// WriteFile writes a .png, .bmp, .tiff or .jpg file.
func (r *Raster) WriteFile(fname string) error {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext == ".png" {
		return r.dc.SavePNG(fname)
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	switch ext {
	case ".bmp":
		err = bmp.Encode(f, r.dc.Image())
	case ".tif", ".tiff":
		err = tiff.Encode(f, r.dc.Image(), nil)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, r.dc.Image(), &jpeg.Options{Quality: jpegQuality})
	default:
		err = fmt.Errorf("%w %q for raster", ErrUnknownFormat, ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (r *Raster) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

func (r *Raster) Background(col color.Color) {
	r.dc.SetColor(col)
	r.dc.Clear()
}

func (r *Raster) SetStrokeColor(col color.Color) {
	r.state.stroke = col
	r.state.noStroke = false
}

func (r *Raster) NoStroke() {
	r.state.noStroke = true
}

func (r *Raster) SetFillColor(col color.Color) {
	r.state.fill = col
	r.state.noFill = false
}

func (r *Raster) NoFill() {
	r.state.noFill = true
}

func (r *Raster) SetStrokeWidth(width float64) {
	r.dc.SetLineWidth(width)
}

func (r *Raster) Translate(dx, dy float64) {
	r.dc.Translate(dx, dy)
}

func (r *Raster) Rotate(degrees float64) {
	r.dc.Rotate(gg.Radians(degrees))
}

func (r *Raster) Push() {
	r.stack = append(r.stack, r.state)
	r.dc.Push()
}

func (r *Raster) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.dc.Pop()
}

func (r *Raster) Bezier(a1, c1, c2, a2 geom.Point) {
	r.dc.NewSubPath()
	r.dc.MoveTo(a1.X, a1.Y)
	r.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, a2.X, a2.Y)
	r.paint()
}

func (r *Raster) Circle(center geom.Point, diameter float64) {
	r.dc.DrawCircle(center.X, center.Y, diameter/2)
	r.paint()
}

func (r *Raster) Ellipse(center geom.Point, width, height float64) {
	r.dc.DrawEllipse(center.X, center.Y, width/2, height/2)
	r.paint()
}

// paint fills then strokes the current path and clears it.
func (r *Raster) paint() {
	if !r.state.noFill {
		r.dc.SetFillStyle(gg.NewSolidPattern(r.state.fill))
		r.dc.FillPreserve()
	}
	if !r.state.noStroke {
		r.dc.SetStrokeStyle(gg.NewSolidPattern(r.state.stroke))
		r.dc.StrokePreserve()
	}
	r.dc.ClearPath()
}

package posy

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/scottkirkwood/posy/geom"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// dots per canvas unit when rasterizing
const pngResolution = 1.0

type drawState struct {
	stroke   color.Color
	fill     color.Color
	noStroke bool
	noFill   bool
	width    float64
	view     canvas.Matrix
	rot      float64 // degrees accumulated in view
}

// Context is my abstraction for Canvas. It keeps screen coordinates (y down)
// and flips them into canvas' y up space when drawing.
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context

	width, height float64
	state         drawState
	stack         []drawState
}

var _ Target = (*Context)(nil)

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
		state: drawState{
			stroke: color.Black,
			fill:   color.White,
			width:  1,
			view:   canvas.Identity,
		},
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WriteFile writes a .png, .svg or .pdf file.
func (ctx *Context) WriteFile(fname string) error {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		return ctx.WritePNG(fname)
	case ".svg":
		return ctx.WriteSVG(fname)
	case ".pdf":
		return ctx.WritePDF(fname)
	default:
		return fmt.Errorf("%w %q for vector canvas", ErrUnknownFormat, ext)
	}
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(pngResolution))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) Size() (float64, float64) {
	return ctx.width, ctx.height
}

// Background empties the canvas and paints it col.
func (ctx *Context) Background(col color.Color) {
	ctx.c.Reset()
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.SetFillColor(col)
	ctx.ctx.DrawPath(0, 0, canvas.Rectangle(ctx.width, ctx.height))
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.state.stroke = col
	ctx.state.noStroke = false
}

func (ctx *Context) NoStroke() {
	ctx.state.noStroke = true
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.state.fill = col
	ctx.state.noFill = false
}

func (ctx *Context) NoFill() {
	ctx.state.noFill = true
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.state.width = width
}

func (ctx *Context) Translate(dx, dy float64) {
	ctx.state.view = ctx.state.view.Translate(dx, dy)
}

func (ctx *Context) Rotate(degrees float64) {
	ctx.state.view = ctx.state.view.Rotate(degrees)
	ctx.state.rot += degrees
}

// Push saves the current draw state.
func (ctx *Context) Push() {
	ctx.stack = append(ctx.stack, ctx.state)
	ctx.ctx.Push()
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no
// states on the stack, this will do nothing.
func (ctx *Context) Pop() {
	if len(ctx.stack) == 0 {
		return
	}
	ctx.state = ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	ctx.ctx.Pop()
}

// Bezier strokes and fills a cubic Bézier path.
func (ctx *Context) Bezier(a1, c1, c2, a2 geom.Point) {
	p0, p1, p2, p3 := ctx.toCanvas(a1), ctx.toCanvas(c1), ctx.toCanvas(c2), ctx.toCanvas(a2)
	path := &canvas.Path{}
	path.MoveTo(p0.X, p0.Y)
	path.CubeTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	ctx.draw(0, 0, path)
}

func (ctx *Context) Circle(center geom.Point, diameter float64) {
	p := ctx.toCanvas(center)
	ctx.draw(p.X, p.Y, canvas.Circle(diameter/2))
}

func (ctx *Context) Ellipse(center geom.Point, width, height float64) {
	p := ctx.toCanvas(center)
	// the y flip mirrors rotations
	ctx.draw(p.X, p.Y, canvas.Ellipse(width/2, height/2).Transform(canvas.Identity.Rotate(-ctx.state.rot)))
}

// toCanvas applies the current transform and flips y.
func (ctx *Context) toCanvas(p geom.Point) canvas.Point {
	q := ctx.state.view.Dot(canvas.Point{X: p.X, Y: p.Y})
	return canvas.Point{X: q.X, Y: ctx.height - q.Y}
}

func (ctx *Context) draw(x, y float64, path *canvas.Path) {
	if ctx.state.noStroke {
		ctx.ctx.SetStrokeColor(color.Transparent)
	} else {
		ctx.ctx.SetStrokeColor(ctx.state.stroke)
	}
	if ctx.state.noFill {
		ctx.ctx.SetFillColor(color.Transparent)
	} else {
		ctx.ctx.SetFillColor(ctx.state.fill)
	}
	ctx.ctx.SetStrokeWidth(ctx.state.width)
	ctx.ctx.DrawPath(x, y, path)
}

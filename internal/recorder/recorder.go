// Package recorder has a Renderer that remembers calls instead of drawing.
package recorder

import (
	"image/color"

	"github.com/scottkirkwood/posy"
	"github.com/scottkirkwood/posy/geom"
)

// Op is one recorded call.
type Op struct {
	Name   string
	Points []geom.Point
	Args   []float64
	Color  color.Color
	// Depth is the Push nesting level at the time of the call.
	Depth int
}

// Recorder implements posy.Renderer.
type Recorder struct {
	Width, Height float64
	Ops           []Op

	depth int
}

var _ posy.Renderer = (*Recorder)(nil)

func New(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Named returns the recorded ops called name, in call order.
func (r *Recorder) Named(name string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}
	return ops
}

// Names returns the op names in call order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Name
	}
	return names
}

// Depth is the current Push nesting level.
func (r *Recorder) Depth() int { return r.depth }

func (r *Recorder) add(op Op) {
	op.Depth = r.depth
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Background(col color.Color) { r.add(Op{Name: "Background", Color: col}) }

func (r *Recorder) SetStrokeColor(col color.Color) { r.add(Op{Name: "SetStrokeColor", Color: col}) }
func (r *Recorder) NoStroke()                      { r.add(Op{Name: "NoStroke"}) }
func (r *Recorder) SetFillColor(col color.Color)   { r.add(Op{Name: "SetFillColor", Color: col}) }
func (r *Recorder) NoFill()                        { r.add(Op{Name: "NoFill"}) }

func (r *Recorder) SetStrokeWidth(width float64) {
	r.add(Op{Name: "SetStrokeWidth", Args: []float64{width}})
}

func (r *Recorder) Bezier(a1, c1, c2, a2 geom.Point) {
	r.add(Op{Name: "Bezier", Points: []geom.Point{a1, c1, c2, a2}})
}

func (r *Recorder) Circle(center geom.Point, diameter float64) {
	r.add(Op{Name: "Circle", Points: []geom.Point{center}, Args: []float64{diameter}})
}

func (r *Recorder) Ellipse(center geom.Point, width, height float64) {
	r.add(Op{Name: "Ellipse", Points: []geom.Point{center}, Args: []float64{width, height}})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.add(Op{Name: "Translate", Args: []float64{dx, dy}})
}

func (r *Recorder) Rotate(degrees float64) {
	r.add(Op{Name: "Rotate", Args: []float64{degrees}})
}

func (r *Recorder) Push() {
	r.add(Op{Name: "Push"})
	r.depth++
}

func (r *Recorder) Pop() {
	r.depth--
	r.add(Op{Name: "Pop"})
}

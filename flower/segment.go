package flower

import (
	"fmt"

	"github.com/scottkirkwood/posy/geom"
)

// Segment is one cubic Bézier arc of a stem. The curve passes through the
// anchors A1 and A2; C1 and C2 only steer it.
type Segment struct {
	A1, C1, C2, A2 geom.Point
}

// NewSegment returns the segment a1 -> a2 with controls c1, c2.
func NewSegment(a1, c1, c2, a2 geom.Point) Segment {
	return Segment{A1: a1, C1: c1, C2: c2, A2: a2}
}

// NextSegment continues prev smoothly: it starts at prev.A2 and its first
// control point mirrors prev.C2 through that joint.
func NextSegment(prev Segment, c2, a2 geom.Point) Segment {
	a1 := prev.A2
	return NewSegment(a1, geom.Reflect(prev.C2, a1), c2, a2)
}

// ControlPolygon returns x, y pairs for a1, c1, c2, a2 in that order.
func (s Segment) ControlPolygon() [8]float64 {
	return [8]float64{
		s.A1.X, s.A1.Y,
		s.C1.X, s.C1.Y,
		s.C2.X, s.C2.Y,
		s.A2.X, s.A2.Y,
	}
}

// PointAt evaluates the curve at t, 0 giving A1 and 1 giving A2.
// Values outside [0,1] extrapolate.
func (s Segment) PointAt(t float64) geom.Point {
	return geom.Point{
		X: bezierPoint(s.A1.X, s.C1.X, s.C2.X, s.A2.X, t),
		Y: bezierPoint(s.A1.Y, s.C1.Y, s.C2.Y, s.A2.Y, t),
	}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v~%v~%v~%v", s.A1, s.C1, s.C2, s.A2)
}

func bezierPoint(a, b, c, d, t float64) float64 {
	u := 1 - t
	return u*u*u*a + 3*u*u*t*b + 3*u*t*t*c + t*t*t*d
}

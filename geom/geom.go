// Package geom has the point arithmetic used to lay out stems.
package geom

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/posy/rng"
)

// Point is a position in canvas space, y growing downward.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Project moves distance away from origin along a compass bearing:
// 0 degrees is straight up, 90 is to the right.
func Project(origin Point, degrees, distance float64) Point {
	sin, cos := math.Sincos(Radians(degrees))
	return Point{
		X: origin.X + distance*sin,
		Y: origin.Y - distance*cos,
	}
}

// Reflect mirrors point through pivot.
func Reflect(point, pivot Point) Point {
	return Point{
		X: 2*pivot.X - point.X,
		Y: 2*pivot.Y - point.Y,
	}
}

// RandomPoint returns a uniform point in [0,width) x [0,height).
func RandomPoint(src rng.Source, width, height float64) Point {
	x := rng.Uniform(src, 0, width)
	y := rng.Uniform(src, 0, height)
	return Point{X: x, Y: y}
}

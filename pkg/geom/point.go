// Package geom provides the 2D primitives shared by the view mapper,
// the scene model and the transform engine: points, rotation about a
// pivot, segment distance and angle normalization. World coordinates
// use a Y-up convention throughout.
package geom

import "math"

// Point is a 2D point or vector in world or screen space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns the componentwise product with (sx, sy).
func (p Point) Mul(sx, sy float64) Point { return Point{p.X * sx, p.Y * sy} }

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rotate rotates p by rad radians counterclockwise about the origin.
func (p Point) Rotate(rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateAround rotates p by rad radians counterclockwise about pivot.
func (p Point) RotateAround(pivot Point, rad float64) Point {
	return p.Sub(pivot).Rotate(rad).Add(pivot)
}

// DistToSegment returns the distance from p to the segment a-b.
// The projection parameter is clamped to [0,1] so endpoints are handled.
func (p Point) DistToSegment(a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Dist(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Point{a.X + ab.X*t, a.Y + ab.Y*t}
	return p.Dist(closest)
}

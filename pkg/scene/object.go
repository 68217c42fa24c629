// Package scene holds the host-owned object model the transform engine
// operates on: rotatable rectangles in world space, plus the scene list
// with z-ordered hit testing and selection. The engine never mutates
// objects directly; it emits Changes that the host applies here.
package scene

import (
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
)

// MinDimension is the floor for object width and height in world units.
const MinDimension = 0.01

// Object is a rectangular, rotatable canvas object. X and Y locate the
// top-left corner of the unrotated rectangle in the Y-up world space, so
// the rect spans [X, X+Width] x [Y-Height, Y]. Rotation is degrees
// counterclockwise about the object's center, stored normalized to
// [0, 360). Width and Height are the pre-rotation dimensions.
type Object struct {
	ID       string
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64
	Selected bool
	ZIndex   int
}

// Center returns the rotation center of the object in world space.
func (o *Object) Center() geom.Point {
	return geom.Pt(o.X+o.Width/2, o.Y-o.Height/2)
}

// Corner identifies one of the four rotated corners by visual order.
const (
	CornerNW = iota
	CornerNE
	CornerSE
	CornerSW
)

// RotatedCorners returns the four world-space corners after rotation, in
// nw, ne, se, sw order of the object's own orientation.
func (o *Object) RotatedCorners() [4]geom.Point {
	c := o.Center()
	rad := geom.Radians(o.Rotation)
	hw, hh := o.Width/2, o.Height/2
	local := [4]geom.Point{
		{X: -hw, Y: hh},  // nw
		{X: hw, Y: hh},   // ne
		{X: hw, Y: -hh},  // se
		{X: -hw, Y: -hh}, // sw
	}
	var out [4]geom.Point
	for i, p := range local {
		out[i] = p.Rotate(rad).Add(c)
	}
	return out
}

// Contains reports whether the world point lies inside the rotated
// rectangle. The query point is rotated by -rotation into the object's
// local axes and tested against the axis-aligned box.
func (o *Object) Contains(p geom.Point) bool {
	local := p.Sub(o.Center()).Rotate(-geom.Radians(o.Rotation))
	return local.X >= -o.Width/2 && local.X <= o.Width/2 &&
		local.Y >= -o.Height/2 && local.Y <= o.Height/2
}

// SetRotation stores deg normalized into [0, 360).
func (o *Object) SetRotation(deg float64) {
	o.Rotation = geom.NormalizeDeg(deg)
}

// Changes is a partial update emitted by the transform engine. Nil
// fields are left untouched; the host applies the rest verbatim (after
// rotation normalization).
type Changes struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
}

// IsZero reports whether the update carries no field at all.
func (c Changes) IsZero() bool {
	return c.X == nil && c.Y == nil && c.Width == nil && c.Height == nil && c.Rotation == nil
}

// apply writes the populated fields onto o.
func (c Changes) apply(o *Object) {
	if c.X != nil {
		o.X = *c.X
	}
	if c.Y != nil {
		o.Y = *c.Y
	}
	if c.Width != nil {
		o.Width = *c.Width
	}
	if c.Height != nil {
		o.Height = *c.Height
	}
	if c.Rotation != nil {
		o.SetRotation(*c.Rotation)
	}
}

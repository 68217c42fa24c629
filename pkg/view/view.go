// Package view defines the pan/zoom view state and the world-to-screen
// coordinate mapper. It is the single source of truth for the scale
// formula; every pixel-tolerance comparison in the engine converts
// through it so tolerances stay visually constant across zoom levels.
package view

import (
	"math"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
)

// BaseScale is the world-to-pixel scale at zoom level zero. At zoom
// level 6 one world unit maps to exactly one pixel.
const BaseScale = 1.0 / 64

// State describes the active viewport: the world point at the center of
// the screen, the exponential zoom level and the viewport size in pixels.
// World Y increases upward; screen Y increases downward.
type State struct {
	CenterX, CenterY float64
	ZoomLevel        float64
	ViewportWidth    int
	ViewportHeight   int
}

// Scale returns the current world-to-pixel scale: 2^zoom * BaseScale.
func (s State) Scale() float64 {
	return math.Pow(2, s.ZoomLevel) * BaseScale
}

// HasViewport reports whether a usable viewport is bound. Screen-space
// operations fail closed when it is not.
func (s State) HasViewport() bool {
	return s.ViewportWidth > 0 && s.ViewportHeight > 0
}

// WorldToScreen projects a world point into screen pixels. The second
// return value is false when no viewport is bound.
func (s State) WorldToScreen(p geom.Point) (geom.Point, bool) {
	if !s.HasViewport() {
		return geom.Point{}, false
	}
	scale := s.Scale()
	return geom.Point{
		X: float64(s.ViewportWidth)/2 + (p.X-s.CenterX)*scale,
		Y: float64(s.ViewportHeight)/2 - (p.Y-s.CenterY)*scale,
	}, true
}

// ScreenToWorld is the inverse projection, used by hosts to turn raw
// pointer pixels into world coordinates before calling the engine.
func (s State) ScreenToWorld(p geom.Point) (geom.Point, bool) {
	if !s.HasViewport() {
		return geom.Point{}, false
	}
	scale := s.Scale()
	return geom.Point{
		X: s.CenterX + (p.X-float64(s.ViewportWidth)/2)/scale,
		Y: s.CenterY - (p.Y-float64(s.ViewportHeight)/2)/scale,
	}, true
}

// PixelsToWorld converts a pixel length into world units at the current
// zoom, for zoom-independent tolerances and handle sizes.
func (s State) PixelsToWorld(px float64) float64 {
	return px / s.Scale()
}

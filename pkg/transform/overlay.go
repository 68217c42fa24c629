package transform

import (
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/view"
)

// HandleAnchor is one of the eight handle positions on a selected
// object's boundary, in world space.
type HandleAnchor struct {
	Handle Handle
	Pos    geom.Point
}

// Overlay is the visualization geometry for one selected object. All
// pixel-sized features are pre-converted to world units at the current
// zoom, so the renderer can draw them in world space and have them keep
// a constant on-screen size. Nothing here is cached: the host rebuilds
// overlays whenever objects, view state or config change.
type Overlay struct {
	ObjectID string

	// Border is the exact rotated outline; OuterBorder is the same
	// outline expanded by the configured border width.
	Border      [4]geom.Point
	OuterBorder [4]geom.Point

	// Handles are the four corners and four edge midpoints. HandleHalf
	// is half the edge length of a handle square in world units.
	Handles    [8]HandleAnchor
	HandleHalf float64

	// Debug zone outlines, present only when requested.
	ResizeZone [4]geom.Point
	RotateZone [4]geom.Point
	HasDebug   bool
}

// expandedCorners returns the rotated corners of the object's rect
// grown by pad world units on every side.
func expandedCorners(o *scene.Object, pad float64) [4]geom.Point {
	c := o.Center()
	rad := geom.Radians(o.Rotation)
	hw, hh := o.Width/2+pad, o.Height/2+pad
	local := [4]geom.Point{
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
		{X: hw, Y: -hh},
		{X: -hw, Y: -hh},
	}
	var out [4]geom.Point
	for i, p := range local {
		out[i] = p.Rotate(rad).Add(c)
	}
	return out
}

// BuildOverlay produces the selection visualization for one object. It
// fails closed (returns false) without a viewport, since every pixel
// dimension needs the current scale to become world units.
func BuildOverlay(o *scene.Object, vs view.State, cfg Config, debug bool) (Overlay, bool) {
	if o == nil || !vs.HasViewport() {
		return Overlay{}, false
	}

	ov := Overlay{ObjectID: o.ID}
	ov.Border = o.RotatedCorners()
	ov.OuterBorder = expandedCorners(o, vs.PixelsToWorld(cfg.BorderWidthPx))
	ov.HandleHalf = vs.PixelsToWorld(cfg.HandleSizePx) / 2

	for i, h := range cornerHandles {
		ov.Handles[i] = HandleAnchor{Handle: h, Pos: ov.Border[i]}
	}
	for i, h := range edgeHandles {
		a, b := ov.Border[i], ov.Border[(i+1)%4]
		mid := geom.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
		ov.Handles[4+i] = HandleAnchor{Handle: h, Pos: mid}
	}

	if debug {
		ov.ResizeZone = expandedCorners(o, vs.PixelsToWorld(cfg.ResizeZonePx))
		ov.RotateZone = expandedCorners(o, vs.PixelsToWorld(cfg.RotateZonePx))
		ov.HasDebug = true
	}
	return ov, true
}

// BuildOverlays builds overlays for every selected object in the scene.
func BuildOverlays(sc *scene.Scene, vs view.State, cfg Config, debug bool) []Overlay {
	var out []Overlay
	for _, o := range sc.Selected() {
		if ov, ok := BuildOverlay(o, vs, cfg, debug); ok {
			out = append(out, ov)
		}
	}
	return out
}

package transform

import (
	"math"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
)

// angleTo returns the atan2 angle of p as seen from center.
func angleTo(center, p geom.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// resizeChanges implements rotation-aware anchored scaling. Everything
// derives from the session's original-bounds snapshot and fixed start
// point; the anchor (the corner or edge midpoint opposite the dragged
// handle) keeps its exact world position for any rotation and aspect
// ratio, which is what a naive width/height adjustment only achieves at
// rotation zero.
func resizeChanges(sess *Session, cur geom.Point, cfg Config) scene.Changes {
	dir := sess.Handle.Dir()
	if dir.X == 0 && dir.Y == 0 {
		return scene.Changes{}
	}

	ob := sess.OriginalBounds
	rad := geom.Radians(sess.StartRotation)
	hw, hh := ob.Width/2, ob.Height/2
	origCenter := geom.Pt(ob.X+hw, ob.Y-hh)

	// The scale origin is the point held fixed: opposite corner for a
	// corner handle, opposite edge midpoint for an edge handle. Local
	// coordinates are center-relative and unrotated.
	anchorLocal := geom.Pt(-dir.X*hw, -dir.Y*hh)
	anchorWorld := anchorLocal.Rotate(rad).Add(origCenter)

	// Express pointer travel in the object's local axes so the scale
	// factors reduce to per-axis ratios.
	localStart := sess.Start.Sub(anchorWorld).Rotate(-rad)
	localCur := cur.Sub(anchorWorld).Rotate(-rad)

	sx, sy := 1.0, 1.0
	if dir.X != 0 {
		sx = axisScale(localCur.X, localStart.X)
	}
	if dir.Y != 0 {
		sy = axisScale(localCur.Y, localStart.Y)
	}

	if cfg.AspectRatioLocked {
		switch {
		case dir.X == 0:
			// n/s edges: mirror the free axis onto the locked one.
			sx = math.Abs(sy)
		case dir.Y == 0:
			sy = math.Abs(sx)
		default:
			// Corners: the axis that changed more dominates, the other
			// matches its magnitude and keeps its own sign.
			if math.Abs(sx-1) >= math.Abs(sy-1) {
				sy = math.Copysign(math.Abs(sx), sy)
			} else {
				sx = math.Copysign(math.Abs(sy), sx)
			}
		}
	}

	sx = clampScale(sx, ob.Width, cfg.MinWidth)
	sy = clampScale(sy, ob.Height, cfg.MinHeight)

	newW := ob.Width * math.Abs(sx)
	newH := ob.Height * math.Abs(sy)

	// The original center sits at (dir.X*hw, dir.Y*hh) from the anchor
	// in local space; scale that offset and rotate it back out.
	centerOffset := geom.Pt(dir.X*hw*sx, dir.Y*hh*sy)
	newCenter := centerOffset.Rotate(rad).Add(anchorWorld)

	x := newCenter.X - newW/2
	y := newCenter.Y + newH/2
	return scene.Changes{X: &x, Y: &y, Width: &newW, Height: &newH}
}

// axisScale is the per-axis ratio with the degenerate-session recovery:
// a zero or non-finite reference yields scale 1 instead of an error.
func axisScale(cur, start float64) float64 {
	if start == 0 {
		return 1
	}
	s := cur / start
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}

// clampScale enforces the minimum dimension while preserving the sign,
// so a pointer dragged across the anchor still flips the object.
func clampScale(s, originalSize, minSize float64) float64 {
	if originalSize <= 0 {
		return s
	}
	floor := minSize / originalSize
	if math.Abs(s) >= floor {
		return s
	}
	if s < 0 {
		return -floor
	}
	return floor
}

package transform

import (
	"fmt"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/view"
)

// ZoneKind distinguishes the two pixel-tolerance regions around a
// selected object's boundary.
type ZoneKind uint8

const (
	ZoneResize ZoneKind = iota
	ZoneRotate
)

var zoneNames = map[ZoneKind]string{
	ZoneResize: "resize",
	ZoneRotate: "rotate",
}

func (z ZoneKind) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("ZoneKind(%d)", z)
}

// HoverZone is the result of classifying a pointer position against an
// object's boundary zones.
type HoverZone struct {
	Kind   ZoneKind
	Handle Handle
}

// Classify tests a world-space pointer position against the resize and
// rotate zones of a selected object. All distances are evaluated in
// screen pixels so the zones stay visually constant across zoom levels.
// It returns false when the object is not selected, the relevant
// features are disabled, or no viewport is bound (fail closed).
//
// Priority is corners-for-resize, then edges-for-resize, then
// corners-for-rotate. This resolves the ambiguous region near a corner
// where an edge test could otherwise fire first.
func Classify(o *scene.Object, p geom.Point, vs view.State, cfg Config) (HoverZone, bool) {
	if o == nil || !o.Selected {
		return HoverZone{}, false
	}
	if !cfg.EnableResize && !cfg.EnableRotate {
		return HoverZone{}, false
	}

	query, ok := vs.WorldToScreen(p)
	if !ok {
		return HoverZone{}, false
	}
	worldCorners := o.RotatedCorners()
	var corners [4]geom.Point
	for i, c := range worldCorners {
		sc, ok := vs.WorldToScreen(c)
		if !ok {
			return HoverZone{}, false
		}
		corners[i] = sc
	}

	// Small objects can put several corners inside the tolerance at
	// once, so each pass picks the nearest match, not the first.
	if cfg.EnableResize {
		if i, ok := nearestCorner(query, corners, cfg.ResizeZonePx); ok {
			return HoverZone{Kind: ZoneResize, Handle: cornerHandles[i]}, true
		}
		best, bestDist := -1, 0.0
		for i := range corners {
			a, b := corners[i], corners[(i+1)%4]
			d := query.DistToSegment(a, b)
			if d <= cfg.ResizeZonePx && (best < 0 || d < bestDist) {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			return HoverZone{Kind: ZoneResize, Handle: edgeHandles[best]}, true
		}
	}

	if cfg.EnableRotate {
		if i, ok := nearestCorner(query, corners, cfg.RotateZonePx); ok {
			if query.Dist(corners[i]) > cfg.ResizeZonePx {
				return HoverZone{Kind: ZoneRotate, Handle: cornerHandles[i]}, true
			}
		}
	}

	return HoverZone{}, false
}

// nearestCorner returns the index of the closest corner within maxDist.
func nearestCorner(query geom.Point, corners [4]geom.Point, maxDist float64) (int, bool) {
	best, bestDist := -1, 0.0
	for i, c := range corners {
		d := query.Dist(c)
		if d <= maxDist && (best < 0 || d < bestDist) {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

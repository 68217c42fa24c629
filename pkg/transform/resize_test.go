package transform

import (
	"math"
	"testing"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
)

// anchorOf returns the world position of the scale anchor for dragging
// handle h on object o: the opposite corner or edge midpoint.
func anchorOf(o *scene.Object, h Handle) geom.Point {
	dir := h.Dir()
	local := geom.Pt(-dir.X*o.Width/2, -dir.Y*o.Height/2)
	return local.Rotate(geom.Radians(o.Rotation)).Add(o.Center())
}

// handlePos returns the world position of handle h on object o.
func handlePos(o *scene.Object, h Handle) geom.Point {
	dir := h.Dir()
	local := geom.Pt(dir.X*o.Width/2, dir.Y*o.Height/2)
	return local.Rotate(geom.Radians(o.Rotation)).Add(o.Center())
}

func startResize(t *testing.T, c *Controller, o *scene.Object, h Handle) {
	t.Helper()
	res := c.DragStart(handlePos(o, h), unityView())
	if !res.Started || res.Kind != StateResizing {
		t.Fatalf("expected resize session on %v, got %+v", h, res)
	}
	sess, _ := c.Session()
	if sess.Handle != h {
		t.Fatalf("expected handle %v, got %v", h, sess.Handle)
	}
}

// TestResizeSECorner is the reference scenario: a 10x10 square at the
// origin, se handle dragged from (10,-10) to (20,-15), nw corner fixed.
func TestResizeSECorner(t *testing.T) {
	o := &scene.Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 10, Selected: true}
	sc := newTestScene(t, o)
	c := NewController(sc, DefaultConfig())

	startResize(t, c, o, HandleSE)
	applyDrag(sc, c, geom.Pt(20, -15))

	if o.X != 0 || o.Y != 0 || o.Width != 20 || o.Height != 15 {
		t.Fatalf("expected {0,0,20,15}, got {%v,%v,%v,%v}", o.X, o.Y, o.Width, o.Height)
	}
}

// TestResizeRotatedAnchorFixed rotates the square 90 degrees, drags the
// handle that is visually se (the local sw handle), and checks the
// visually-opposite corner keeps its exact world position even though
// the raw x/y fields both changed.
func TestResizeRotatedAnchorFixed(t *testing.T) {
	o := &scene.Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 10, Rotation: 90, Selected: true}
	sc := newTestScene(t, o)
	c := NewController(sc, DefaultConfig())

	// After a 90 degree turn the local sw corner sits at world (10,-10),
	// the visual se position.
	if handlePos(o, HandleSW).Dist(geom.Pt(10, -10)) > 1e-9 {
		t.Fatalf("setup: local sw should sit at (10,-10), got %v", handlePos(o, HandleSW))
	}
	anchorBefore := anchorOf(o, HandleSW)

	startResize(t, c, o, HandleSW)
	applyDrag(sc, c, geom.Pt(14, -13))

	anchorAfter := anchorOf(o, HandleSW)
	if anchorBefore.Dist(anchorAfter) > 1e-9 {
		t.Fatalf("anchor drifted: %v -> %v", anchorBefore, anchorAfter)
	}
	if o.X == 0 || o.Y == 0 {
		t.Fatalf("expected both x and y to change, got (%v,%v)", o.X, o.Y)
	}
	if math.Abs(o.Width-13) > 1e-9 || math.Abs(o.Height-14) > 1e-9 {
		t.Fatalf("expected 13x14, got %vx%v", o.Width, o.Height)
	}
}

// TestResizeRoundTrip drags every handle out and back at several
// rotations: the bounds must return to the original within tolerance
// and the anchor must never move, for corner and edge handles alike.
func TestResizeRoundTrip(t *testing.T) {
	handles := []Handle{
		HandleN, HandleNE, HandleE, HandleSE,
		HandleS, HandleSW, HandleW, HandleNW,
	}
	for _, rot := range []float64{0, 30, 45, 90, 210} {
		for _, h := range handles {
			o := &scene.Object{ID: "a", X: 3, Y: -2, Width: 80, Height: 50, Selected: true}
			o.SetRotation(rot)
			sc := newTestScene(t, o)
			c := NewController(sc, DefaultConfig())

			orig := *o
			anchorBefore := anchorOf(o, h)
			start := handlePos(o, h)

			startResize(t, c, o, h)
			applyDrag(sc, c, start.Add(geom.Pt(7, -4)))

			if anchorOf(o, h).Dist(anchorBefore) > 1e-9 {
				t.Errorf("rot %v handle %v: anchor drifted mid-drag", rot, h)
			}

			applyDrag(sc, c, start)
			c.DragEnd()

			if math.Abs(o.Width-orig.Width) > 1e-9 || math.Abs(o.Height-orig.Height) > 1e-9 {
				t.Errorf("rot %v handle %v: size did not return: %vx%v", rot, h, o.Width, o.Height)
			}
			if math.Abs(o.X-orig.X) > 1e-9 || math.Abs(o.Y-orig.Y) > 1e-9 {
				t.Errorf("rot %v handle %v: position did not return: (%v,%v)", rot, h, o.X, o.Y)
			}
			if anchorOf(o, h).Dist(anchorBefore) > 1e-9 {
				t.Errorf("rot %v handle %v: anchor drifted after round trip", rot, h)
			}
		}
	}
}

// TestEdgeHandleLocksOrthogonalAxis: dragging the e edge must leave the
// height alone.
func TestEdgeHandleLocksOrthogonalAxis(t *testing.T) {
	o := &scene.Object{ID: "a", X: 0, Y: 0, Width: 100, Height: 100, Selected: true}
	sc := newTestScene(t, o)
	c := NewController(sc, DefaultConfig())

	startResize(t, c, o, HandleE)
	applyDrag(sc, c, geom.Pt(150, -50))

	if o.Width != 150 || o.Height != 100 {
		t.Fatalf("expected 150x100, got %vx%v", o.Width, o.Height)
	}
	// The w edge midpoint stays put.
	if anchorOf(o, HandleE).Dist(geom.Pt(0, -50)) > 1e-9 {
		t.Fatalf("w edge anchor moved to %v", anchorOf(o, HandleE))
	}
}

func TestResizeMinimumClamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWidth = 2
	cfg.MinHeight = 3
	o := &scene.Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 10, Selected: true}
	sc := newTestScene(t, o)
	c := NewController(sc, cfg)

	startResize(t, c, o, HandleSE)
	applyDrag(sc, c, geom.Pt(0.5, -0.5))

	if math.Abs(o.Width-2) > 1e-9 || math.Abs(o.Height-3) > 1e-9 {
		t.Fatalf("expected clamp to 2x3, got %vx%v", o.Width, o.Height)
	}
	if o.X != 0 || o.Y != 0 {
		t.Fatalf("anchor corner moved: (%v,%v)", o.X, o.Y)
	}
}

// TestResizeFlipAcrossAnchor drags the se handle past the nw anchor;
// the object flips to the other side instead of pinning at the anchor.
func TestResizeFlipAcrossAnchor(t *testing.T) {
	o := &scene.Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 10, Selected: true}
	sc := newTestScene(t, o)
	c := NewController(sc, DefaultConfig())

	startResize(t, c, o, HandleSE)
	applyDrag(sc, c, geom.Pt(-5, 5))

	if o.Width != 5 || o.Height != 5 {
		t.Fatalf("expected 5x5, got %vx%v", o.Width, o.Height)
	}
	if o.X != -5 || o.Y != 5 {
		t.Fatalf("expected flip to (-5,5), got (%v,%v)", o.X, o.Y)
	}
}

func TestAspectLockCorner(t *testing.T) {
	o := &scene.Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 10, Selected: true}
	sc := newTestScene(t, o)
	c := NewController(sc, DefaultConfig())
	c.SetAspectLocked(true)

	startResize(t, c, o, HandleSE)
	// X doubles, Y only stretches 1.2x: X dominates, Y matches it.
	applyDrag(sc, c, geom.Pt(20, -12))

	if o.Width != 20 || o.Height != 20 {
		t.Fatalf("expected 20x20, got %vx%v", o.Width, o.Height)
	}
	if o.X != 0 || o.Y != 0 {
		t.Fatalf("anchor moved: (%v,%v)", o.X, o.Y)
	}
}

func TestAspectLockEdgeMirrors(t *testing.T) {
	o := &scene.Object{ID: "a", X: 0, Y: 0, Width: 100, Height: 100, Selected: true}
	sc := newTestScene(t, o)
	c := NewController(sc, DefaultConfig())
	c.SetAspectLocked(true)

	startResize(t, c, o, HandleE)
	applyDrag(sc, c, geom.Pt(150, -50))

	if o.Width != 150 || o.Height != 150 {
		t.Fatalf("expected 150x150, got %vx%v", o.Width, o.Height)
	}
	// Height grows symmetrically about the anchored edge midpoint.
	if o.Y != 25 {
		t.Fatalf("expected Y 25, got %v", o.Y)
	}
}

// TestDegenerateReferenceVector: a session whose start point coincides
// with the anchor yields scale 1, not a blowup.
func TestDegenerateReferenceVector(t *testing.T) {
	sess := &Session{
		ObjectID:       "a",
		Kind:           StateResizing,
		Handle:         HandleSE,
		Start:          geom.Pt(0, 0), // the nw anchor itself
		OriginalBounds: Bounds{X: 0, Y: 0, Width: 10, Height: 10},
	}
	ch := resizeChanges(sess, geom.Pt(42, 17), DefaultConfig())
	if ch.Width == nil || ch.Height == nil {
		t.Fatal("expected a full bounds change")
	}
	if *ch.Width != 10 || *ch.Height != 10 {
		t.Fatalf("expected unchanged 10x10, got %vx%v", *ch.Width, *ch.Height)
	}
	if *ch.X != 0 || *ch.Y != 0 {
		t.Fatalf("expected unchanged origin, got (%v,%v)", *ch.X, *ch.Y)
	}
}

package transform

import (
	"math"
	"testing"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
)

func TestOverlayFailsClosedWithoutViewport(t *testing.T) {
	o := bigSquare()
	vs := unityView()
	vs.ViewportHeight = 0
	if _, ok := BuildOverlay(o, vs, DefaultConfig(), false); ok {
		t.Fatal("expected no overlay without viewport")
	}
}

func TestOverlayBorderAndHandles(t *testing.T) {
	o := bigSquare()
	ov, ok := BuildOverlay(o, unityView(), DefaultConfig(), false)
	if !ok {
		t.Fatal("expected overlay")
	}
	if ov.ObjectID != "sq" {
		t.Fatalf("unexpected object id %q", ov.ObjectID)
	}

	corners := o.RotatedCorners()
	for i := range corners {
		if ov.Border[i].Dist(corners[i]) > 1e-9 {
			t.Errorf("border corner %d: expected %v, got %v", i, corners[i], ov.Border[i])
		}
	}

	// At scale 1 the outer border is the rect padded by the border
	// width in pixels.
	if ov.OuterBorder[0].Dist(geom.Pt(-2, 2)) > 1e-9 {
		t.Errorf("outer nw: expected (-2,2), got %v", ov.OuterBorder[0])
	}

	wantHandles := map[Handle]geom.Point{
		HandleNW: {X: 0, Y: 0},
		HandleNE: {X: 100, Y: 0},
		HandleSE: {X: 100, Y: -100},
		HandleSW: {X: 0, Y: -100},
		HandleN:  {X: 50, Y: 0},
		HandleE:  {X: 100, Y: -50},
		HandleS:  {X: 50, Y: -100},
		HandleW:  {X: 0, Y: -50},
	}
	seen := map[Handle]bool{}
	for _, h := range ov.Handles {
		want, ok := wantHandles[h.Handle]
		if !ok || seen[h.Handle] {
			t.Errorf("unexpected or duplicate handle %v", h.Handle)
			continue
		}
		seen[h.Handle] = true
		if h.Pos.Dist(want) > 1e-9 {
			t.Errorf("handle %v: expected %v, got %v", h.Handle, want, h.Pos)
		}
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct handles, got %d", len(seen))
	}

	if ov.HasDebug {
		t.Fatal("debug zones not requested")
	}
}

func TestOverlayHandleSizeCompensatesZoom(t *testing.T) {
	o := bigSquare()
	cfg := DefaultConfig()

	vs := unityView() // scale 1
	ov, _ := BuildOverlay(o, vs, cfg, false)
	if math.Abs(ov.HandleHalf-4) > 1e-12 {
		t.Fatalf("scale 1: expected handle half 4, got %v", ov.HandleHalf)
	}

	vs.ZoomLevel = 8 // scale 4
	ov, _ = BuildOverlay(o, vs, cfg, false)
	if math.Abs(ov.HandleHalf-1) > 1e-12 {
		t.Fatalf("scale 4: expected handle half 1, got %v", ov.HandleHalf)
	}
}

func TestOverlayDebugZones(t *testing.T) {
	o := bigSquare()
	ov, ok := BuildOverlay(o, unityView(), DefaultConfig(), true)
	if !ok || !ov.HasDebug {
		t.Fatal("expected debug zones")
	}
	if ov.ResizeZone[0].Dist(geom.Pt(-12, 12)) > 1e-9 {
		t.Errorf("resize zone nw: expected (-12,12), got %v", ov.ResizeZone[0])
	}
	if ov.RotateZone[0].Dist(geom.Pt(-24, 24)) > 1e-9 {
		t.Errorf("rotate zone nw: expected (-24,24), got %v", ov.RotateZone[0])
	}
}

func TestOverlayRotatedBorderMatchesObject(t *testing.T) {
	o := bigSquare()
	o.SetRotation(37)
	ov, ok := BuildOverlay(o, unityView(), DefaultConfig(), false)
	if !ok {
		t.Fatal("expected overlay")
	}
	corners := o.RotatedCorners()
	for i := range corners {
		if ov.Border[i].Dist(corners[i]) > 1e-9 {
			t.Errorf("rotated border corner %d drifted", i)
		}
	}
	// Edge midpoint handles stay on the rotated edges.
	mid := geom.Pt((corners[0].X+corners[1].X)/2, (corners[0].Y+corners[1].Y)/2)
	var nPos geom.Point
	for _, h := range ov.Handles {
		if h.Handle == HandleN {
			nPos = h.Pos
		}
	}
	if nPos.Dist(mid) > 1e-9 {
		t.Errorf("n handle off the rotated edge midpoint: %v vs %v", nPos, mid)
	}
}

func TestBuildOverlaysOnlySelected(t *testing.T) {
	sc := scene.New()
	sel := &scene.Object{ID: "sel", X: 0, Y: 0, Width: 10, Height: 10, Selected: true}
	other := &scene.Object{ID: "other", X: 50, Y: 0, Width: 10, Height: 10}
	for _, o := range []*scene.Object{sel, other} {
		if err := sc.Add(o); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	ovs := BuildOverlays(sc, unityView(), DefaultConfig(), false)
	if len(ovs) != 1 || ovs[0].ObjectID != "sel" {
		t.Fatalf("expected one overlay for sel, got %+v", ovs)
	}
}

package scene

import (
	"math"
	"testing"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
)

func square(id string, x, y, size float64) *Object {
	return &Object{ID: id, X: x, Y: y, Width: size, Height: size}
}

func TestAddRejectsBadObjects(t *testing.T) {
	s := New()
	if err := s.Add(&Object{ID: "", Width: 1, Height: 1}); err == nil {
		t.Error("expected error for empty id")
	}
	if err := s.Add(square("a", 0, 0, 10)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(square("a", 5, 5, 10)); err == nil {
		t.Error("expected error for duplicate id")
	}
	if err := s.Add(&Object{ID: "tiny", Width: 0.001, Height: 1}); err == nil {
		t.Error("expected error for sub-minimum width")
	}
}

func TestAddNormalizesRotation(t *testing.T) {
	s := New()
	o := square("a", 0, 0, 10)
	o.Rotation = -45
	if err := s.Add(o); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if o.Rotation != 315 {
		t.Fatalf("expected rotation normalized to 315, got %v", o.Rotation)
	}
}

func TestCenterAndCorners(t *testing.T) {
	o := &Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 6}
	c := o.Center()
	if c.X != 5 || c.Y != -3 {
		t.Fatalf("expected center (5,-3), got (%v,%v)", c.X, c.Y)
	}

	corners := o.RotatedCorners()
	want := [4]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: -6}, {X: 0, Y: -6}}
	for i := range corners {
		if corners[i].Dist(want[i]) > 1e-9 {
			t.Errorf("corner %d: expected %v, got %v", i, want[i], corners[i])
		}
	}
}

func TestRotatedCornersQuarterTurn(t *testing.T) {
	o := &Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 6, Rotation: 90}
	corners := o.RotatedCorners()
	// Rotating 90 CCW about center (5,-3): nw offset (-5,3) maps to
	// (-3,-5), so nw (0,0) -> (2,-8) and se (10,-6) -> (8,2).
	if corners[CornerNW].Dist(geom.Pt(2, -8)) > 1e-9 {
		t.Fatalf("nw corner after 90: got %v", corners[CornerNW])
	}
	if corners[CornerSE].Dist(geom.Pt(8, 2)) > 1e-9 {
		t.Fatalf("se corner after 90: got %v", corners[CornerSE])
	}
}

func TestContainsCenterForAllRotations(t *testing.T) {
	o := &Object{ID: "a", X: 3, Y: 7, Width: 4, Height: 9}
	for deg := 0.0; deg < 360; deg += 7.5 {
		o.SetRotation(deg)
		if !o.Contains(o.Center()) {
			t.Errorf("rotation %v: center not contained", deg)
		}
	}
}

func TestContainsRotated(t *testing.T) {
	// A 10x2 bar rotated 90 degrees becomes tall and thin.
	o := &Object{ID: "a", X: 0, Y: 0, Width: 10, Height: 2, Rotation: 90}
	c := o.Center()
	if !o.Contains(geom.Pt(c.X, c.Y+4)) {
		t.Error("point along rotated long axis should be inside")
	}
	if o.Contains(geom.Pt(c.X+4, c.Y)) {
		t.Error("point along rotated short axis should be outside")
	}
}

func TestTopmostAtUsesZIndex(t *testing.T) {
	s := New()
	under := square("under", 0, 0, 10)
	under.ZIndex = 1
	over := square("over", 2, -2, 10)
	over.ZIndex = 5
	for _, o := range []*Object{under, over} {
		if err := s.Add(o); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if got := s.TopmostAt(geom.Pt(5, -5)); got == nil || got.ID != "over" {
		t.Fatalf("expected overlap hit on 'over', got %v", got)
	}
	if got := s.TopmostAt(geom.Pt(0.5, -0.5)); got == nil || got.ID != "under" {
		t.Fatalf("expected exclusive hit on 'under', got %v", got)
	}
	if got := s.TopmostAt(geom.Pt(100, 100)); got != nil {
		t.Fatalf("expected background miss, got %v", got.ID)
	}
}

func TestSelectOnly(t *testing.T) {
	s := New()
	for _, id := range []string{"a", "b"} {
		if err := s.Add(square(id, 0, 0, 5)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if !s.SelectOnly("a") {
		t.Fatal("expected selection change")
	}
	if ids := s.SelectedIDs(); len(ids) != 1 || ids[0] != "a" {
		t.Fatalf("expected [a], got %v", ids)
	}
	if s.SelectOnly("a") {
		t.Fatal("re-selecting same object should report no change")
	}
	if !s.SelectOnly("") {
		t.Fatal("clearing selection should report a change")
	}
	if len(s.SelectedIDs()) != 0 {
		t.Fatal("expected empty selection")
	}
}

func TestApplyPartialChanges(t *testing.T) {
	s := New()
	o := square("a", 0, 0, 10)
	if err := s.Add(o); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	x := 4.0
	rot := 370.0
	s.Apply("a", Changes{X: &x, Rotation: &rot})
	if o.X != 4 || o.Y != 0 || o.Width != 10 {
		t.Fatalf("unexpected state after partial apply: %+v", o)
	}
	if math.Abs(o.Rotation-10) > 1e-9 {
		t.Fatalf("expected rotation normalized to 10, got %v", o.Rotation)
	}

	// Unknown ids are silently ignored.
	s.Apply("ghost", Changes{X: &x})
}

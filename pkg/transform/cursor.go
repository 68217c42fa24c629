package transform

import (
	"fmt"
	"math"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/view"
)

// CursorKind is the semantic cursor the host should show. The engine
// picks the kind; turning it into an actual cursor image or CSS name is
// the host's concern.
type CursorKind uint8

const (
	CursorDefault CursorKind = iota
	CursorMove
	CursorResizeNS
	CursorResizeEW
	CursorResizeNWSE
	CursorResizeNESW
	CursorRotateNW
	CursorRotateNE
	CursorRotateSE
	CursorRotateSW
)

var cursorNames = map[CursorKind]string{
	CursorDefault:    "default",
	CursorMove:       "move",
	CursorResizeNS:   "ns-resize",
	CursorResizeEW:   "ew-resize",
	CursorResizeNWSE: "nwse-resize",
	CursorResizeNESW: "nesw-resize",
	CursorRotateNW:   "rotate-nw",
	CursorRotateNE:   "rotate-ne",
	CursorRotateSE:   "rotate-se",
	CursorRotateSW:   "rotate-sw",
}

func (k CursorKind) String() string {
	if name, ok := cursorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CursorKind(%d)", k)
}

// quadrant snaps a rotation in degrees to the nearest quarter turn and
// returns it as a step count in [0, 3].
func quadrant(rotationDeg float64) int {
	q := int(math.Round(geom.NormalizeDeg(rotationDeg)/90)) % 4
	return q
}

// resizeCursorBase is the handle-to-cursor table at rotation zero.
var resizeCursorBase = map[Handle]CursorKind{
	HandleN:  CursorResizeNS,
	HandleS:  CursorResizeNS,
	HandleE:  CursorResizeEW,
	HandleW:  CursorResizeEW,
	HandleNW: CursorResizeNWSE,
	HandleSE: CursorResizeNWSE,
	HandleNE: CursorResizeNESW,
	HandleSW: CursorResizeNESW,
}

// resizeCursor returns the resize cursor for a handle on an object with
// the given rotation. The cursor orientation tracks rotation in 90
// degree steps: a quarter turn swaps the axis pair, a half turn brings
// it back.
func resizeCursor(h Handle, rotationDeg float64) CursorKind {
	kind := resizeCursorBase[h]
	if quadrant(rotationDeg)%2 == 0 {
		return kind
	}
	switch kind {
	case CursorResizeNS:
		return CursorResizeEW
	case CursorResizeEW:
		return CursorResizeNS
	case CursorResizeNWSE:
		return CursorResizeNESW
	case CursorResizeNESW:
		return CursorResizeNWSE
	}
	return kind
}

// rotateCursorByCompass maps a visual compass corner to its rotate
// cursor. The table is for this engine's Y-up world / Y-down screen
// convention; the corner tests in the test suite drag each corner and
// pin the visual direction down empirically.
var rotateCursorByCompass = map[Handle]CursorKind{
	HandleNW: CursorRotateNW,
	HandleNE: CursorRotateNE,
	HandleSE: CursorRotateSE,
	HandleSW: CursorRotateSW,
}

// cornerCCW lists the corner handles in counterclockwise visual order,
// so rotating the object by a quarter turn advances a local corner one
// slot along this cycle.
var cornerCCW = [4]Handle{HandleNE, HandleNW, HandleSW, HandleSE}

// visualCorner returns the compass corner where a local corner handle
// visually sits once the object's rotation is snapped to the nearest
// quarter turn.
func visualCorner(h Handle, rotationDeg float64) Handle {
	q := quadrant(rotationDeg)
	for i, c := range cornerCCW {
		if c == h {
			return cornerCCW[(i+q)%4]
		}
	}
	return h
}

// rotateCursor returns the rotate cursor for a corner handle on an
// object with the given rotation.
func rotateCursor(h Handle, rotationDeg float64) CursorKind {
	return rotateCursorByCompass[visualCorner(h, rotationDeg)]
}

// cursorForZone maps a hover or session zone to its cursor kind.
func cursorForZone(kind ZoneKind, h Handle, rotationDeg float64) CursorKind {
	if kind == ZoneRotate {
		return rotateCursor(h, rotationDeg)
	}
	return resizeCursor(h, rotationDeg)
}

// ResolveCursor picks the cursor for the current frame. Precedence:
// active session, then a hovered zone on a selected object, then the
// move hint inside a selected object, then the idle default.
func ResolveCursor(sess *Session, hov Hover, rotationOf func(id string) (float64, bool), cfg Config) CursorKind {
	if sess != nil {
		switch sess.Kind {
		case StateMoving:
			return CursorMove
		case StateResizing:
			if rot, ok := rotationOf(sess.ObjectID); ok {
				return resizeCursor(sess.Handle, rot)
			}
			return resizeCursor(sess.Handle, sess.StartRotation)
		case StateRotating:
			if rot, ok := rotationOf(sess.ObjectID); ok {
				return rotateCursor(sess.Handle, rot)
			}
			return rotateCursor(sess.Handle, sess.StartRotation)
		}
	}
	if hov.HasZone && hov.Object != nil {
		return cursorForZone(hov.Zone.Kind, hov.Zone.Handle, hov.Object.Rotation)
	}
	if hov.InsideSelected && cfg.EnableMove {
		return CursorMove
	}
	return CursorDefault
}

// Cursor is the controller-level convenience: classify the pointer and
// resolve the cursor in one call.
func (c *Controller) Cursor(p geom.Point, vs view.State) CursorKind {
	lookup := func(id string) (float64, bool) {
		if o := c.sc.Get(id); o != nil {
			return o.Rotation, true
		}
		return 0, false
	}
	if c.sess != nil {
		return ResolveCursor(c.sess, Hover{}, lookup, c.cfg)
	}
	return ResolveCursor(nil, c.Hover(p, vs), lookup, c.cfg)
}

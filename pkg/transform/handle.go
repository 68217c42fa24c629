// Package transform implements the interaction engine for rectangular,
// rotatable canvas objects: hover-zone classification against resize and
// rotate zones in screen-pixel tolerance, the move/resize/rotate drag
// state machine with rotation-aware anchored scaling, cursor resolution
// and overlay geometry generation. The engine never mutates the host's
// objects; every change is returned as an Update the host applies.
package transform

import (
	"fmt"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
)

// Handle identifies one of the eight drag affordances on an object's
// boundary. Handle names are fixed to the object's own orientation and
// rotate with it; the cursor resolver maps them back to visual
// directions.
type Handle uint8

const (
	HandleN Handle = iota
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleNW
)

var handleNames = map[Handle]string{
	HandleN:  "n",
	HandleNE: "ne",
	HandleE:  "e",
	HandleSE: "se",
	HandleS:  "s",
	HandleSW: "sw",
	HandleW:  "w",
	HandleNW: "nw",
}

func (h Handle) String() string {
	if name, ok := handleNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Handle(%d)", h)
}

// IsCorner reports whether the handle is one of the four corners.
func (h Handle) IsCorner() bool {
	d := h.Dir()
	return d.X != 0 && d.Y != 0
}

// Opposite returns the handle across the object's center, which is the
// scale anchor during a resize.
func (h Handle) Opposite() Handle {
	return Handle((uint8(h) + 4) % 8)
}

// Dir returns the handle's outward direction in the object's local,
// unrotated axes: +X east, +Y north, components in {-1, 0, 1}.
func (h Handle) Dir() geom.Point {
	switch h {
	case HandleN:
		return geom.Pt(0, 1)
	case HandleNE:
		return geom.Pt(1, 1)
	case HandleE:
		return geom.Pt(1, 0)
	case HandleSE:
		return geom.Pt(1, -1)
	case HandleS:
		return geom.Pt(0, -1)
	case HandleSW:
		return geom.Pt(-1, -1)
	case HandleW:
		return geom.Pt(-1, 0)
	case HandleNW:
		return geom.Pt(-1, 1)
	}
	return geom.Point{}
}

// cornerHandles lists the corner handles in the order of
// scene.Object.RotatedCorners: nw, ne, se, sw.
var cornerHandles = [4]Handle{HandleNW, HandleNE, HandleSE, HandleSW}

// edgeHandles lists the edge handles by the corner pair that bounds
// them: edge i runs from corner i to corner (i+1)%4.
var edgeHandles = [4]Handle{HandleN, HandleE, HandleS, HandleW}

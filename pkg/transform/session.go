package transform

import (
	"fmt"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
)

// State is the controller's drag state. The controller is Idle unless a
// drag-start matched an object, and returns to Idle on drag-end or
// cancel.
type State uint8

const (
	StateIdle State = iota
	StateMoving
	StateResizing
	StateRotating
)

var stateNames = map[State]string{
	StateIdle:     "Idle",
	StateMoving:   "Moving",
	StateResizing: "Resizing",
	StateRotating: "Rotating",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", s)
}

// Bounds is the unrotated-bounds snapshot taken at session start.
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// Session is the ephemeral record of one drag gesture. OriginalBounds
// and Start are snapshotted at drag-start; resize and rotate math always
// computes from these anchors, never from incremental deltas, which is
// what keeps long drags free of numeric drift. Only a move re-baselines
// Start as it goes.
type Session struct {
	ObjectID string
	Kind     State
	Start    geom.Point

	// Resize and rotate state.
	Handle         Handle
	StartRotation  float64
	OriginalBounds Bounds
}

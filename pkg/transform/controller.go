package transform

import (
	"sort"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/view"
)

// Controller runs the move/resize/rotate state machine over a scene.
// All entry points are synchronous and must be called from the host's
// event dispatch; a drag-update with no active session is a no-op.
//
// The controller reads objects from the scene but never writes them:
// DragUpdate returns an Update the host applies (scene.Apply in the
// simple case). The host must apply each update before delivering the
// next pointer event, since move deltas are computed against the
// object's current position.
type Controller struct {
	sc   *scene.Scene
	cfg  Config
	sess *Session
}

// NewController builds a controller over the host-owned scene.
func NewController(sc *scene.Scene, cfg Config) *Controller {
	return &Controller{sc: sc, cfg: cfg}
}

// Config returns the active configuration.
func (c *Controller) Config() Config { return c.cfg }

// SetAspectLocked mirrors the host's live modifier state (shift held).
func (c *Controller) SetAspectLocked(locked bool) {
	c.cfg.AspectRatioLocked = locked
}

// State returns the current drag state.
func (c *Controller) State() State {
	if c.sess == nil {
		return StateIdle
	}
	return c.sess.Kind
}

// Session returns a copy of the active session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.sess == nil {
		return Session{}, false
	}
	return *c.sess, true
}

// Update is a change request for one object, to be applied by the host.
type Update struct {
	ObjectID string
	Changes  scene.Changes
}

// StartResult reports what a drag-start did: whether a session began,
// and whether the click changed the selection set.
type StartResult struct {
	Started  bool
	Kind     State
	ObjectID string

	SelectionChanged bool
	Selection        []string
}

// EndResult reports the object whose transform just ended.
type EndResult struct {
	ObjectID string
}

// Hover is the per-frame classification of an idle pointer, consumed by
// the cursor resolver and the host's hover feedback.
type Hover struct {
	Zone    HoverZone
	HasZone bool
	// Object is the selected object whose zone matched, or the selected
	// object containing the pointer when no zone matched.
	Object         *scene.Object
	InsideSelected bool
}

// selectedTopDown returns the selected objects, highest zIndex first.
func (c *Controller) selectedTopDown() []*scene.Object {
	sel := c.sc.Selected()
	sort.SliceStable(sel, func(i, j int) bool { return sel[i].ZIndex > sel[j].ZIndex })
	return sel
}

// Hover classifies the pointer against the selected objects' zones.
// Valid only while idle; during a drag the session dictates feedback.
func (c *Controller) Hover(p geom.Point, vs view.State) Hover {
	for _, o := range c.selectedTopDown() {
		if z, ok := Classify(o, p, vs, c.cfg); ok {
			return Hover{Zone: z, HasZone: true, Object: o}
		}
	}
	for _, o := range c.selectedTopDown() {
		if o.Contains(p) {
			return Hover{Object: o, InsideSelected: true}
		}
	}
	return Hover{}
}

// DragStart processes a press at a world point. Resize/rotate zones of
// selected objects always win over a containment hit, regardless of
// z-order, so the handles of the selection cannot be stolen by an
// unselected object underneath. A press on empty background clears the
// selection; a press inside an object selects it and, when moves are
// enabled, begins a move session.
func (c *Controller) DragStart(p geom.Point, vs view.State) StartResult {
	if c.sess != nil {
		// Out-of-order press; the active gesture keeps the session.
		return StartResult{}
	}

	for _, o := range c.selectedTopDown() {
		z, ok := Classify(o, p, vs, c.cfg)
		if !ok {
			continue
		}
		kind := StateResizing
		if z.Kind == ZoneRotate {
			kind = StateRotating
		}
		c.sess = &Session{
			ObjectID:      o.ID,
			Kind:          kind,
			Start:         p,
			Handle:        z.Handle,
			StartRotation: o.Rotation,
			OriginalBounds: Bounds{
				X: o.X, Y: o.Y,
				Width: o.Width, Height: o.Height,
			},
		}
		return StartResult{Started: true, Kind: kind, ObjectID: o.ID}
	}

	hit := c.sc.TopmostAt(p)
	if hit == nil {
		changed := c.sc.SelectOnly("")
		return StartResult{SelectionChanged: changed}
	}

	res := StartResult{}
	if c.sc.SelectOnly(hit.ID) {
		res.SelectionChanged = true
		res.Selection = c.sc.SelectedIDs()
	}
	if c.cfg.EnableMove {
		c.sess = &Session{
			ObjectID: hit.ID,
			Kind:     StateMoving,
			Start:    p,
		}
		res.Started = true
		res.Kind = StateMoving
		res.ObjectID = hit.ID
	}
	return res
}

// DragUpdate advances the active session to the given pointer position
// and returns the resulting change request. It returns false when there
// is no active session, the session's object no longer exists, or the
// pointer produced no change.
func (c *Controller) DragUpdate(p geom.Point) (Update, bool) {
	if c.sess == nil {
		return Update{}, false
	}
	o := c.sc.Get(c.sess.ObjectID)
	if o == nil {
		return Update{}, false
	}

	var changes scene.Changes
	switch c.sess.Kind {
	case StateMoving:
		changes = c.moveChanges(o, p)
	case StateRotating:
		changes = c.rotateChanges(o, p)
	case StateResizing:
		changes = resizeChanges(c.sess, p, c.cfg)
	}
	if changes.IsZero() {
		return Update{}, false
	}
	return Update{ObjectID: o.ID, Changes: changes}, true
}

// moveChanges translates by the delta from the session start and then
// re-baselines the start point, so small moves accumulate on top of the
// host-applied positions without re-snapshotting bounds.
func (c *Controller) moveChanges(o *scene.Object, p geom.Point) scene.Changes {
	dx := p.X - c.sess.Start.X
	dy := p.Y - c.sess.Start.Y
	c.sess.Start = p
	if dx == 0 && dy == 0 {
		return scene.Changes{}
	}
	x := o.X + dx
	y := o.Y + dy
	return scene.Changes{X: &x, Y: &y}
}

// rotateChanges computes the new rotation from the fixed session start
// point. The start point and start rotation are never re-baselined
// here: atan2 deltas need a fixed reference, and re-baselining makes
// the angle walk off under pointer jitter.
func (c *Controller) rotateChanges(o *scene.Object, p geom.Point) scene.Changes {
	center := o.Center()
	startAngle := angleTo(center, c.sess.Start)
	curAngle := angleTo(center, p)
	delta := geom.NormalizeDeltaRad(curAngle - startAngle)

	deg := geom.NormalizeDeg(c.sess.StartRotation + geom.Degrees(delta))
	if c.cfg.AspectRatioLocked {
		deg = geom.SnapDeg(deg, c.cfg.SnapRotationDeg)
	}
	rot := deg
	return scene.Changes{Rotation: &rot}
}

// DragEnd finishes the active session and reports which object it
// transformed. Intermediate updates are already committed by the host;
// ending a session only stops future updates.
func (c *Controller) DragEnd() (EndResult, bool) {
	if c.sess == nil {
		return EndResult{}, false
	}
	id := c.sess.ObjectID
	c.sess = nil
	if c.sc.Get(id) == nil {
		// Object vanished mid-gesture; nothing to report.
		return EndResult{}, false
	}
	return EndResult{ObjectID: id}, true
}

// Cancel drops the active session without a result, for lost pointer
// capture or an explicit host cancel. There is no rollback; whatever
// the host already applied stays applied.
func (c *Controller) Cancel() {
	c.sess = nil
}

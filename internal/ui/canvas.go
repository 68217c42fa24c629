package ui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scenefile"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/transform"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/view"
)

// Canvas is the interactive scene viewport: it owns the view state,
// routes pointer input into the transform controller, and renders the
// scene plus selection overlays.
type Canvas struct {
	doc  *scenefile.Document
	view view.State
	ctrl *transform.Controller

	debugZones bool

	panning  bool
	panLast  f32.Point
	dragging bool
	lastPos  f32.Point
	shift    bool

	log func(format string, args ...any)
}

// NewCanvas wraps a loaded document in an interactive viewport.
func NewCanvas(doc *scenefile.Document, cfg transform.Config, logf func(string, ...any)) *Canvas {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Canvas{
		doc:  doc,
		view: view.State{ZoomLevel: 6},
		ctrl: transform.NewController(doc.Scene, cfg),
		log:  logf,
	}
}

// Document returns the document the canvas edits.
func (c *Canvas) Document() *scenefile.Document { return c.doc }

// Controller exposes the transform controller for status display.
func (c *Canvas) Controller() *transform.Controller { return c.ctrl }

// View returns the current view state.
func (c *Canvas) View() view.State { return c.view }

// SetDebugZones toggles rendering of the hover tolerance bands.
func (c *Canvas) SetDebugZones(on bool) { c.debugZones = on }

func (c *Canvas) Layout(gtx layout.Context) layout.Dimensions {
	c.view.ViewportWidth = gtx.Constraints.Max.X
	c.view.ViewportHeight = gtx.Constraints.Max.Y

	c.handleKeys(gtx)
	c.handlePointer(gtx)

	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	c.cursorFor(c.ctrl.Cursor(c.worldAt(c.lastPos), c.view)).Add(gtx.Ops)

	paint.Fill(gtx.Ops, color.NRGBA{R: 28, G: 30, B: 38, A: 255})
	c.drawObjects(gtx.Ops)
	c.drawOverlays(gtx.Ops)
	area.Pop()

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (c *Canvas) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			if c.ctrl.State() != transform.StateIdle {
				c.ctrl.Cancel()
				c.dragging = false
				c.log("[INFO] Gesture cancelled")
				gtx.Execute(op.InvalidateCmd{})
			}
		}
	}

	center := f32.Pt(float32(c.view.ViewportWidth)/2, float32(c.view.ViewportHeight)/2)
	for {
		ev, ok := gtx.Event(key.Filter{Name: "+", Optional: key.ModShift})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			c.zoomAt(center, 0.5)
			gtx.Execute(op.InvalidateCmd{})
		}
	}
	for {
		ev, ok := gtx.Event(key.Filter{Name: "-"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			c.zoomAt(center, -0.5)
			gtx.Execute(op.InvalidateCmd{})
		}
	}
	for {
		ev, ok := gtx.Event(key.Filter{Name: "R"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			c.ResetView()
			c.log("[INFO] View reset")
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

// ResetView recenters the world origin at the default zoom.
func (c *Canvas) ResetView() {
	c.view.CenterX = 0
	c.view.CenterY = 0
	c.view.ZoomLevel = 6
}

// SetZoomLevel jumps to an absolute zoom level, keeping the center.
func (c *Canvas) SetZoomLevel(z float64) {
	c.view.ZoomLevel = z
}

func (c *Canvas) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Scroll,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		shift := pe.Modifiers.Contain(key.ModShift)
		if shift != c.shift {
			c.shift = shift
			c.ctrl.SetAspectLocked(shift)
		}
		c.lastPos = pe.Position

		switch pe.Kind {
		case pointer.Scroll:
			if pe.Scroll.Y != 0 {
				c.zoomAt(pe.Position, -float64(pe.Scroll.Y)/120*0.5)
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Press:
			switch pe.Buttons {
			case pointer.ButtonPrimary:
				res := c.ctrl.DragStart(c.worldAt(pe.Position), c.view)
				if res.SelectionChanged {
					c.log("[INFO] Selection: %v", res.Selection)
				}
				if res.Started {
					c.dragging = true
					c.log("[INFO] %s started on %s", res.Kind, res.ObjectID)
				}
				gtx.Execute(op.InvalidateCmd{})
			case pointer.ButtonSecondary, pointer.ButtonTertiary:
				c.panning = true
				c.panLast = pe.Position
			}

		case pointer.Drag:
			if c.panning {
				c.panBy(pe.Position)
				gtx.Execute(op.InvalidateCmd{})
				break
			}
			if c.dragging {
				if u, ok := c.ctrl.DragUpdate(c.worldAt(pe.Position)); ok {
					c.doc.Scene.Apply(u.ObjectID, u.Changes)
					gtx.Execute(op.InvalidateCmd{})
				}
			}

		case pointer.Release:
			if c.panning {
				c.panning = false
				break
			}
			if c.dragging {
				c.dragging = false
				if end, ok := c.ctrl.DragEnd(); ok {
					c.log("[INFO] Gesture finished on %s", end.ObjectID)
				}
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Cancel:
			c.panning = false
			c.dragging = false
			c.ctrl.Cancel()
		}
	}
}

func (c *Canvas) worldAt(p f32.Point) geom.Point {
	w, _ := c.view.ScreenToWorld(geom.Pt(float64(p.X), float64(p.Y)))
	return w
}

// zoomAt changes the zoom level while keeping the world point under the
// cursor stationary on screen.
func (c *Canvas) zoomAt(pos f32.Point, delta float64) {
	anchor := c.worldAt(pos)
	c.view.ZoomLevel += delta
	if c.view.ZoomLevel < 0 {
		c.view.ZoomLevel = 0
	}
	if c.view.ZoomLevel > 12 {
		c.view.ZoomLevel = 12
	}
	moved := c.worldAt(pos)
	c.view.CenterX += anchor.X - moved.X
	c.view.CenterY += anchor.Y - moved.Y
}

func (c *Canvas) panBy(pos f32.Point) {
	scale := c.view.Scale()
	dx := float64(pos.X-c.panLast.X) / scale
	dy := float64(pos.Y-c.panLast.Y) / scale
	c.panLast = pos
	c.view.CenterX -= dx
	c.view.CenterY += dy
}

func (c *Canvas) cursorFor(kind transform.CursorKind) pointer.Cursor {
	switch kind {
	case transform.CursorMove:
		return pointer.CursorAllScroll
	case transform.CursorResizeNS:
		return pointer.CursorNorthSouthResize
	case transform.CursorResizeEW:
		return pointer.CursorEastWestResize
	case transform.CursorResizeNWSE:
		return pointer.CursorNorthWestSouthEastResize
	case transform.CursorResizeNESW:
		return pointer.CursorNorthEastSouthWestResize
	case transform.CursorRotateNW, transform.CursorRotateNE,
		transform.CursorRotateSE, transform.CursorRotateSW:
		if c.ctrl.State() == transform.StateRotating {
			return pointer.CursorGrabbing
		}
		return pointer.CursorGrab
	default:
		return pointer.CursorDefault
	}
}

func (c *Canvas) drawObjects(ops *op.Ops) {
	for _, o := range c.doc.Scene.ByZAscending() {
		spec, ok := c.quadPath(ops, o.RotatedCorners())
		if !ok {
			continue
		}
		paint.FillShape(ops, objectColor(o), clip.Outline{Path: spec}.Op())
	}
}

func (c *Canvas) drawOverlays(ops *op.Ops) {
	cfg := c.ctrl.Config()
	for _, ov := range transform.BuildOverlays(c.doc.Scene, c.view, cfg, c.debugZones) {
		accent := color.NRGBA{R: 90, G: 140, B: 255, A: 255}

		if ov.HasDebug {
			if spec, ok := c.quadPath(ops, ov.RotateZone); ok {
				paint.FillShape(ops, color.NRGBA{R: 255, G: 180, B: 60, A: 40}, clip.Outline{Path: spec}.Op())
			}
			if spec, ok := c.quadPath(ops, ov.ResizeZone); ok {
				paint.FillShape(ops, color.NRGBA{R: 90, G: 140, B: 255, A: 50}, clip.Outline{Path: spec}.Op())
			}
		}

		if spec, ok := c.quadPath(ops, ov.OuterBorder); ok {
			paint.FillShape(ops, accent, clip.Stroke{Path: spec, Width: 1.5}.Op())
		}

		half := float32(ov.HandleHalf * c.view.Scale())
		for _, h := range ov.Handles {
			sp, ok := c.view.WorldToScreen(h.Pos)
			if !ok {
				continue
			}
			x, y := float32(sp.X), float32(sp.Y)
			outer := clip.Rect{
				Min: image.Pt(int(x-half), int(y-half)),
				Max: image.Pt(int(x+half), int(y+half)),
			}
			inner := clip.Rect{
				Min: image.Pt(int(x-half)+1, int(y-half)+1),
				Max: image.Pt(int(x+half)-1, int(y+half)-1),
			}
			paint.FillShape(ops, accent, outer.Op())
			paint.FillShape(ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, inner.Op())
		}
	}
}

// quadPath projects four world corners into a screen-space path.
func (c *Canvas) quadPath(ops *op.Ops, corners [4]geom.Point) (clip.PathSpec, bool) {
	var pts [4]f32.Point
	for i, wc := range corners {
		sp, ok := c.view.WorldToScreen(wc)
		if !ok {
			return clip.PathSpec{}, false
		}
		pts[i] = f32.Pt(float32(sp.X), float32(sp.Y))
	}

	var p clip.Path
	p.Begin(ops)
	p.MoveTo(pts[0])
	p.LineTo(pts[1])
	p.LineTo(pts[2])
	p.LineTo(pts[3])
	p.Close()
	return p.End(), true
}

var objectPalette = []color.NRGBA{
	{R: 96, G: 125, B: 199, A: 255},
	{R: 120, G: 180, B: 140, A: 255},
	{R: 200, G: 140, B: 100, A: 255},
	{R: 170, G: 120, B: 190, A: 255},
	{R: 190, G: 170, B: 100, A: 255},
}

func objectColor(o *scene.Object) color.NRGBA {
	var sum int
	for _, r := range o.ID {
		sum += int(r)
	}
	return objectPalette[sum%len(objectPalette)]
}

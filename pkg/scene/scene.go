package scene

import (
	"fmt"
	"sort"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/geom"
)

// Scene owns the object list. Objects are kept in insertion order;
// z-ordered views are computed on demand.
type Scene struct {
	objects []*Object
	index   map[string]*Object
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{index: make(map[string]*Object)}
}

// Add appends an object to the scene. Duplicate ids are rejected so
// change requests stay unambiguous.
func (s *Scene) Add(o *Object) error {
	if o.ID == "" {
		return fmt.Errorf("scene: object has empty id")
	}
	if _, exists := s.index[o.ID]; exists {
		return fmt.Errorf("scene: duplicate object id %q", o.ID)
	}
	if o.Width < MinDimension || o.Height < MinDimension {
		return fmt.Errorf("scene: object %q smaller than minimum dimension", o.ID)
	}
	o.Rotation = geom.NormalizeDeg(o.Rotation)
	s.objects = append(s.objects, o)
	s.index[o.ID] = o
	return nil
}

// Get returns the object with the given id, or nil.
func (s *Scene) Get(id string) *Object {
	return s.index[id]
}

// Objects returns the objects in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// ByZAscending returns the objects sorted for rendering: lowest zIndex
// first, insertion order breaking ties.
func (s *Scene) ByZAscending() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// TopmostAt returns the highest-z object containing the world point, or
// nil when the point hits only background.
func (s *Scene) TopmostAt(p geom.Point) *Object {
	var hit *Object
	for _, o := range s.objects {
		if !o.Contains(p) {
			continue
		}
		if hit == nil || o.ZIndex >= hit.ZIndex {
			hit = o
		}
	}
	return hit
}

// Selected returns the selected objects in insertion order.
func (s *Scene) Selected() []*Object {
	var out []*Object
	for _, o := range s.objects {
		if o.Selected {
			out = append(out, o)
		}
	}
	return out
}

// SelectedIDs returns the ids of the selected objects.
func (s *Scene) SelectedIDs() []string {
	var out []string
	for _, o := range s.objects {
		if o.Selected {
			out = append(out, o.ID)
		}
	}
	return out
}

// SelectOnly marks the object with the given id as the sole selection.
// It reports whether the selection set changed. An empty id clears the
// selection.
func (s *Scene) SelectOnly(id string) bool {
	changed := false
	for _, o := range s.objects {
		want := o.ID == id && id != ""
		if o.Selected != want {
			o.Selected = want
			changed = true
		}
	}
	return changed
}

// Remove deletes the object with the given id, reporting whether it
// existed.
func (s *Scene) Remove(id string) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, o := range s.objects {
		if o.ID == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	return true
}

// Apply applies a partial change to the identified object. An unknown id
// is a silent no-op, matching the engine's invalid-object recovery.
func (s *Scene) Apply(id string, c Changes) {
	o := s.index[id]
	if o == nil {
		return
	}
	c.apply(o)
}

package state

import (
	"math"

	"BezierBoard/internal/geom"
)

// NoSelection is the selected index when no committed path is selected.
const NoSelection = -1

// Registry holds the committed paths, the current selection and the
// in-progress buffer.
type Registry struct {
	paths    []*Path
	selected int
	current  *Path
}

func NewRegistry() *Registry {
	return &Registry{
		selected: NoSelection,
		current:  NewPath(),
	}
}

// Paths returns the committed paths. The slice must not be modified.
func (r *Registry) Paths() []*Path {
	return r.paths
}

// Current returns the in-progress buffer.
func (r *Registry) Current() *Path {
	return r.current
}

// Append adds a point to the in-progress buffer.
func (r *Registry) Append(pt geom.Point) {
	r.current.Append(pt)
}

// Commit stores a copy of a non-empty buffer and starts a fresh one.
func (r *Registry) Commit() (*Path, bool) {
	if r.current.Len() == 0 {
		return nil, false
	}
	saved := r.current.Clone()
	r.paths = append(r.paths, saved)
	r.current = NewPath()
	return saved, true
}

// Delete removes the committed path at index i and clears the selection.
func (r *Registry) Delete(i int) bool {
	if i < 0 || i >= len(r.paths) {
		return false
	}
	r.paths = append(r.paths[:i], r.paths[i+1:]...)
	r.selected = NoSelection
	return true
}

// SelectedIndex returns the selected index or NoSelection.
func (r *Registry) SelectedIndex() int {
	return r.selected
}

// Selected returns the selected path, if any.
func (r *Registry) Selected() (*Path, bool) {
	if r.selected == NoSelection {
		return nil, false
	}
	return r.paths[r.selected], true
}

// Nearest returns the index of the committed path owning the point closest
// to pt. Ties go to the lower index. With no points at all it returns
// NoSelection.
func (r *Registry) Nearest(pt geom.Point) int {
	closest := NoSelection
	best := math.Inf(1)
	for i, p := range r.paths {
		for _, q := range p.Points {
			if d := pt.Distance(q); d < best {
				best = d
				closest = i
			}
		}
	}
	return closest
}

// SelectNearest selects the path nearest to pt and reports whether the
// selection changed.
func (r *Registry) SelectNearest(pt geom.Point) bool {
	closest := r.Nearest(pt)
	if closest == r.selected {
		return false
	}
	r.selected = closest
	return true
}

// Reset drops every committed path, the buffer and the selection.
func (r *Registry) Reset() {
	r.paths = nil
	r.selected = NoSelection
	r.current = NewPath()
}

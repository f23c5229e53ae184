package state

import (
	"github.com/hashicorp/go-hclog"

	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
)

// DefaultHitRadius is the distance below which a pointer press grabs a
// control point.
const DefaultHitRadius = 10

// Mode is the drawing-mode state of an Editor.
type Mode int

const (
	// Idle clicks select the nearest committed path.
	Idle Mode = iota
	// Drawing clicks append points to the in-progress path.
	Drawing
)

func (m Mode) String() string {
	if m == Drawing {
		return "drawing"
	}
	return "idle"
}

// dragTarget identifies the grabbed point by path ID and index so that a
// drag outliving its path is dropped instead of moving another path's point.
type dragTarget struct {
	pathID string
	index  int
}

// Editor is the application state behind one canvas. It is not safe for
// concurrent use: frontends must deliver events from a single goroutine.
type Editor struct {
	// OnChange is called after every applied change.
	OnChange func()

	registry  *Registry
	mode      Mode
	drag      *dragTarget
	hitRadius float64
	clock     Clock
	logger    hclog.Logger
}

// NewEditor returns an Idle editor with an empty registry. A nil logger
// discards output; a non-positive hitRadius uses DefaultHitRadius.
func NewEditor(logger hclog.Logger, hitRadius float64) *Editor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if hitRadius <= 0 {
		hitRadius = DefaultHitRadius
	}
	return &Editor{
		registry:  NewRegistry(),
		hitRadius: hitRadius,
		logger:    logger,
	}
}

func (e *Editor) Registry() *Registry {
	return e.registry
}

func (e *Editor) Mode() Mode {
	return e.mode
}

// Revision returns the number of changes applied so far.
func (e *Editor) Revision() uint64 {
	return e.clock.Now()
}

// Dragging reports whether a control point is grabbed.
func (e *Editor) Dragging() bool {
	return e.drag != nil
}

func (e *Editor) changed() {
	e.clock.Tick()
	if e.OnChange != nil {
		e.OnChange()
	}
}

func (e *Editor) commit() bool {
	p, ok := e.registry.Commit()
	if ok {
		e.logger.Debug("committed path", "id", p.ID, "points", p.Len(), "segments", p.SegmentCount())
	}
	return ok
}

// ToggleDrawingMode switches between Idle and Drawing. Leaving Drawing
// commits a non-empty in-progress path.
func (e *Editor) ToggleDrawingMode() {
	if e.mode == Drawing {
		e.commit()
		e.mode = Idle
	} else {
		e.mode = Drawing
	}
	e.logger.Debug("drawing mode", "mode", e.mode)
	e.changed()
}

// StartNewPath commits the in-progress path, if any.
func (e *Editor) StartNewPath() {
	if e.commit() {
		e.changed()
	}
}

// DeleteSelectedPath removes the selected path. Without a selection it does
// nothing.
func (e *Editor) DeleteSelectedPath() {
	i := e.registry.SelectedIndex()
	if i == NoSelection {
		return
	}
	id := e.registry.Paths()[i].ID
	if e.registry.Delete(i) {
		e.logger.Debug("deleted path", "id", id, "index", i)
		e.changed()
	}
}

// EnforceC0OnSelected makes the selected path positionally continuous.
func (e *Editor) EnforceC0OnSelected() {
	e.enforce("c0", EnforceC0)
}

// EnforceC1OnSelected makes the selected path tangent continuous.
func (e *Editor) EnforceC1OnSelected() {
	e.enforce("c1", EnforceC1)
}

func (e *Editor) enforce(name string, fn func(*Path) bool) {
	p, ok := e.registry.Selected()
	if !ok {
		return
	}
	if !fn(p) {
		e.logger.Debug("continuity skipped", "kind", name, "id", p.ID, "points", p.Len())
		return
	}
	e.logger.Debug("continuity enforced", "kind", name, "id", p.ID, "junctions", p.SegmentCount()-1)
	e.changed()
}

// ClearAll drops every path, the in-progress buffer, the selection and any
// drag. The drawing mode is kept.
func (e *Editor) ClearAll() {
	e.registry.Reset()
	e.drag = nil
	e.logger.Debug("cleared board")
	e.changed()
}

// HandleClick appends a point while drawing and selects the nearest path
// otherwise.
func (e *Editor) HandleClick(pt geom.Point) {
	if e.mode == Drawing {
		e.registry.Append(pt)
		e.changed()
		return
	}
	if e.registry.SelectNearest(pt) {
		e.logger.Debug("selected path", "index", e.registry.SelectedIndex())
		e.changed()
	}
}

// HandlePointerDown grabs the control point of the selected path under pt.
// When several points are within the hit radius the last one wins.
func (e *Editor) HandlePointerDown(pt geom.Point) {
	p, ok := e.registry.Selected()
	if !ok {
		return
	}
	for i, q := range p.Points {
		if pt.Distance(q) < e.hitRadius {
			e.drag = &dragTarget{pathID: p.ID, index: i}
		}
	}
}

// HandlePointerMove moves the grabbed point to pt. If the selected path has
// changed since the grab, the drag is dropped.
func (e *Editor) HandlePointerMove(pt geom.Point) {
	if e.drag == nil {
		return
	}
	p, ok := e.registry.Selected()
	if !ok || p.ID != e.drag.pathID || !p.SetPoint(e.drag.index, pt) {
		e.drag = nil
		return
	}
	e.changed()
}

// HandlePointerUp releases the grabbed point.
func (e *Editor) HandlePointerUp() {
	e.drag = nil
}

// Scene snapshots the registry for drawing.
func (e *Editor) Scene() render.Scene {
	paths := e.registry.Paths()
	sc := render.Scene{
		Paths:    make([]render.Shape, len(paths)),
		Selected: e.registry.SelectedIndex(),
		Current:  shapeOf(e.registry.Current()),
	}
	for i, p := range paths {
		sc.Paths[i] = shapeOf(p)
	}
	return sc
}

func shapeOf(p *Path) render.Shape {
	sh := render.Shape{
		Segments: make([]geom.Cubic, 0, p.SegmentCount()),
		Trailing: append([]geom.Point(nil), p.Trailing()...),
	}
	for _, c := range p.Segments() {
		sh.Segments = append(sh.Segments, c)
	}
	return sh
}

// Render draws the whole board onto s.
func (e *Editor) Render(s render.Surface, st render.Style) {
	render.Draw(s, st, e.Scene())
}

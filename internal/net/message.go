package net

import (
	"BezierBoard/internal/geom"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

// Client message types.
const (
	MsgClick  = "click"
	MsgDown   = "down"
	MsgMove   = "move"
	MsgUp     = "up"
	MsgAction = "action"
)

// Actions carried by MsgAction.
const (
	ActionToggle = "toggle"
	ActionNew    = "new"
	ActionDelete = "delete"
	ActionC0     = "c0"
	ActionC1     = "c1"
	ActionClear  = "clear"
)

// ClientMessage is one input event from the browser, in canvas-local
// coordinates.
type ClientMessage struct {
	Type   string  `json:"type"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Action string  `json:"action,omitempty"`
}

// Frame is sent to the browser after every change.
type Frame struct {
	Type     string      `json:"type"`
	Revision uint64      `json:"revision"`
	Drawing  bool        `json:"drawing"`
	Selected int         `json:"selected"`
	Paths    int         `json:"paths"`
	Ops      []render.Op `json:"ops"`
}

// apply feeds msg to e. Unknown messages are ignored.
func apply(e *state.Editor, msg ClientMessage) {
	pt := geom.Pt(msg.X, msg.Y)
	switch msg.Type {
	case MsgClick:
		e.HandleClick(pt)
	case MsgDown:
		e.HandlePointerDown(pt)
	case MsgMove:
		e.HandlePointerMove(pt)
	case MsgUp:
		e.HandlePointerUp()
	case MsgAction:
		switch msg.Action {
		case ActionToggle:
			e.ToggleDrawingMode()
		case ActionNew:
			e.StartNewPath()
		case ActionDelete:
			e.DeleteSelectedPath()
		case ActionC0:
			e.EnforceC0OnSelected()
		case ActionC1:
			e.EnforceC1OnSelected()
		case ActionClear:
			e.ClearAll()
		}
	}
}

func frame(e *state.Editor, st render.Style) Frame {
	var rec render.Recorder
	e.Render(&rec, st)
	return Frame{
		Type:     "frame",
		Revision: e.Revision(),
		Drawing:  e.Mode() == state.Drawing,
		Selected: e.Registry().SelectedIndex(),
		Paths:    len(e.Registry().Paths()),
		Ops:      rec.Ops,
	}
}

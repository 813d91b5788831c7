package ui

import (
	"github.com/mxinitup/six-minute-walk-calculator/internal/input"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
)

// Pane is a UI pane.
//
// A Pane can focus another Pane, in fact one of any number of "child" Panes.
// Thus they can be structured as a tree and any node in this tree can be
// asked whether it HasFocus, and what it Focusses; generally, to answer
// whether a pane HasFocus, it would probably consult its parent whether the
// parent HasFocus and which pane it Focusses.
//
// In this tree of panes, a Pane should generally have a parent, which can be
// set with SetParent; an exception would be the root pane of the tree.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)

	FocusNext()
	FocusPrev()
}

// PaneQuerier are the querying member functions of a pane.
//
// E.g. letting a child access its parent, this allows limiting the childs
// access.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane". Panes guaranteed to be
// assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and dimensions,
	// but limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

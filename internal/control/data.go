package control

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
	"github.com/mxinitup/six-minute-walk-calculator/internal/session"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// ManualCellCount is the number of cells in the manual lap table.
const ManualCellCount = 16

// FocusArea identifies which input area of the main view holds focus.
type FocusArea int

const (
	// FocusTable means the manual lap table holds focus.
	FocusTable FocusArea = iota
	// FocusCheckpoints means the checkpoint rows hold focus.
	FocusCheckpoints
)

// ControlData is the state of the TUI controller that is not owned by the
// session: the raw text of the input areas, focus, overlay visibility, and
// the most recent calculation result.
type ControlData struct {
	Session *session.Session

	// ManualCells is the raw text of the manual lap table's cells. It is only
	// parsed and validated as a whole on submission.
	ManualCells [ManualCellCount]string

	// CheckpointPositions is the raw text of the six position inputs; a blank
	// position means the start line.
	CheckpointPositions [model.CheckpointCount]string
	// CheckpointDirections is the leg selection for each of the six minutes.
	CheckpointDirections [model.CheckpointCount]model.Direction

	// Result is the most recent successful reconstruction, nil if none.
	Result *model.WalkResult

	// StatusMsg is the advisory line shown in the status bar, e.g. the reason
	// a lap press or a table submission was rejected.
	StatusMsg string

	Focus      FocusArea
	FocusIndex int

	// EditBuffer holds the text being typed while a cell edit overlay is
	// active.
	EditBuffer string
	Editing    bool

	ShowLog   bool
	ShowHelp  bool
	ShowDebug bool

	RenderTimes          util.MetricsHandler
	EventProcessingTimes util.MetricsHandler
}

// NewControlData returns control data wrapping the given session, with all
// inputs blank and all checkpoint directions on the outbound leg.
func NewControlData(s *session.Session) *ControlData {
	d := ControlData{Session: s}
	for i := range d.CheckpointDirections {
		d.CheckpointDirections[i] = model.DirectionOut
	}
	return &d
}

// Checkpoints assembles the checkpoint inputs into model checkpoints.
// A blank position counts as the start line.
func (d *ControlData) Checkpoints() ([model.CheckpointCount]model.Checkpoint, error) {
	var checkpoints [model.CheckpointCount]model.Checkpoint
	for i := range checkpoints {
		position := 0.0
		if text := strings.TrimSpace(d.CheckpointPositions[i]); text != "" {
			parsed, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return checkpoints, fmt.Errorf("minute %d: cannot parse position '%s'", i+1, text)
			}
			position = parsed
		}
		checkpoints[i] = model.Checkpoint{
			Minute:    i + 1,
			Position:  position,
			Direction: d.CheckpointDirections[i],
		}
	}
	return checkpoints, nil
}

// FocusCount returns the number of focusable slots in the current focus area.
func (d *ControlData) FocusCount() int {
	if d.Focus == FocusTable {
		return ManualCellCount
	}
	return model.CheckpointCount
}

// MoveFocus moves the focus index by the given delta, crossing over between
// the table and the checkpoint rows at the ends.
func (d *ControlData) MoveFocus(delta int) {
	d.FocusIndex += delta
	for d.FocusIndex < 0 {
		d.Focus = otherArea(d.Focus)
		d.FocusIndex += d.FocusCount()
	}
	for d.FocusIndex >= d.FocusCount() {
		d.FocusIndex -= d.FocusCount()
		d.Focus = otherArea(d.Focus)
	}
}

func otherArea(a FocusArea) FocusArea {
	if a == FocusTable {
		return FocusCheckpoints
	}
	return FocusTable
}

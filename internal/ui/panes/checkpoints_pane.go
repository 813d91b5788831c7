package panes

import (
	"fmt"

	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// CheckpointsPane renders one row per minute mark with the remembered
// position on the track and the leg it refers to.
type CheckpointsPane struct {
	ui.LeafPane

	position  func(i int) string
	direction func(i int) model.Direction
	focused   func() (index int, ok bool)
	editing   func() (buffer string, ok bool)
}

// Draw draws this pane.
func (p *CheckpointsPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.TableDefault)

	title := "checkpoints"
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.TableTitleBox)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.TableTitleBox, title)

	focusedIndex, haveFocus := p.focused()
	editBuffer, editActive := p.editing()

	for i := 0; i < model.CheckpointCount; i++ {
		rowY := y + 1 + i

		style := p.Stylesheet.TableDefault
		position := p.position(i)
		if position == "" {
			position = "0"
		}
		if haveFocus && i == focusedIndex {
			style = p.Stylesheet.TableFocused
			if editActive {
				style = p.Stylesheet.Editor
				position = editBuffer + "_"
			}
		}

		line := fmt.Sprintf("min %d  %s %s",
			i+1,
			util.PadLeft(util.TruncateAt(position, 6), 6),
			util.PadRight(p.direction(i).String(), 4),
		)
		p.Renderer.DrawBox(x+1, rowY, w-2, 1, style)
		p.Renderer.DrawText(x+1, rowY, w-2, 1, style, line)
	}
}

// NewCheckpointsPane constructs and returns a new CheckpointsPane.
func NewCheckpointsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	position func(i int) string,
	direction func(i int) model.Direction,
	focused func() (index int, ok bool),
	editing func() (buffer string, ok bool),
) *CheckpointsPane {
	return &CheckpointsPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		position:  position,
		direction: direction,
		focused:   focused,
		editing:   editing,
	}
}

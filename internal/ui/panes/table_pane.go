package panes

import (
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// TablePane renders the manual lap table as a grid of cells.
// The cells' raw text is rendered as-is; validation only happens on
// submission, so a cell may well show text that will later be rejected.
type TablePane struct {
	ui.LeafPane

	cellColumns int

	cell        func(i int) string
	cellCount   func() int
	focusedCell func() (index int, ok bool)
	editing     func() (buffer string, ok bool)
}

// Draw draws this pane.
func (p *TablePane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.TableDefault)

	title := "lap table"
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.TableTitleBox)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.TableTitleBox, title)

	focusedIndex, haveFocus := p.focusedCell()
	editBuffer, editActive := p.editing()

	cellWidth := (w - 2) / p.cellColumns
	for i := 0; i < p.cellCount(); i++ {
		col := i % p.cellColumns
		row := i / p.cellColumns

		cellX := x + 1 + col*cellWidth
		cellY := y + 1 + row

		style := p.Stylesheet.TableDefault
		content := p.cell(i)
		if haveFocus && i == focusedIndex {
			style = p.Stylesheet.TableFocused
			if editActive {
				style = p.Stylesheet.Editor
				content = editBuffer + "_"
			}
		}

		p.Renderer.DrawBox(cellX, cellY, cellWidth-1, 1, style)
		p.Renderer.DrawText(cellX, cellY, cellWidth-1, 1, style, util.PadCenter(util.TruncateAt(content, cellWidth-1), cellWidth-1))
	}
}

// NewTablePane constructs and returns a new TablePane.
func NewTablePane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	cell func(i int) string,
	cellCount func() int,
	focusedCell func() (index int, ok bool),
	editing func() (buffer string, ok bool),
) *TablePane {
	return &TablePane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		cellColumns: 4,
		cell:        cell,
		cellCount:   cellCount,
		focusedCell: focusedCell,
		editing:     editing,
	}
}

package panes

import (
	"fmt"

	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// LapsPane lists the recorded lap times, most recent last, with the split to
// the previous lap.
type LapsPane struct {
	ui.LeafPane

	laps func() []model.Duration
}

// Draw draws this pane.
func (p *LapsPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LapsDefault)

	title := "laps"
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LapsTitleBox)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.LapsTitleBox, title)

	laps := p.laps()

	// scroll so the latest laps stay visible
	visible := h - 2
	first := 0
	if len(laps) > visible {
		first = len(laps) - visible
	}

	row := y + 1
	prev := model.Duration(0)
	if first > 0 {
		prev = laps[first-1]
	}
	for i := first; i < len(laps); i++ {
		line := fmt.Sprintf("%s  %s  +%s",
			util.PadLeft(fmt.Sprintf("%d", i+1), 3),
			laps[i].String(),
			(laps[i] - prev).String(),
		)
		p.Renderer.DrawText(x+1, row, w-2, 1, p.Stylesheet.LapsDefault, line)
		prev = laps[i]
		row++
	}
}

// NewLapsPane constructs and returns a new LapsPane.
func NewLapsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	laps func() []model.Duration,
) *LapsPane {
	return &LapsPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		laps: laps,
	}
}

package panes

import (
	"fmt"

	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// ResultsPane renders the reconstructed distance table of the most recent
// calculation.
type ResultsPane struct {
	ui.LeafPane

	result func() *model.WalkResult
}

// Draw draws this pane.
func (p *ResultsPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.ResultsDefault)

	title := "distance"
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.ResultsTitleBox)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.ResultsTitleBox, title)

	result := p.result()
	if result == nil {
		hint := "(no calculation yet)"
		p.Renderer.DrawText(x+1, y+2, w-2, 1, p.Stylesheet.ResultsDefault.DefaultDimmed(), hint)
		return
	}

	header := fmt.Sprintf("%s %s %s %s",
		util.PadLeft("min", 3),
		util.PadLeft("laps", 5),
		util.PadLeft("total", 7),
		util.PadLeft("+min", 7),
	)
	p.Renderer.DrawText(x+1, y+1, w-2, 1, p.Stylesheet.ResultsDefault.Bolded(), header)

	for i, row := range result.Rows {
		line := fmt.Sprintf("%s %s %s %s",
			util.PadLeft(fmt.Sprintf("%d", row.Minute), 3),
			util.PadLeft(fmt.Sprintf("%d", row.LapsCompleted), 5),
			util.PadLeft(fmt.Sprintf("%.1fm", row.Total), 7),
			util.PadLeft(fmt.Sprintf("%.1fm", row.ThisMinute), 7),
		)
		p.Renderer.DrawText(x+1, y+2+i, w-2, 1, p.Stylesheet.ResultsDefault, line)
	}

	totalLine := fmt.Sprintf("total: %.1fm (%.1f laps)", result.TotalDistance, result.TotalLaps)
	p.Renderer.DrawText(x+1, y+2+len(result.Rows)+1, w-2, 1, p.Stylesheet.ResultsDefault.Bolded(), totalLine)
}

// NewResultsPane constructs and returns a new ResultsPane.
func NewResultsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	result func() *model.WalkResult,
) *ResultsPane {
	return &ResultsPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		result: result,
	}
}

package panes

import (
	"github.com/mxinitup/six-minute-walk-calculator/internal/session"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// StatusPane is a status bar that displays the entry mode, the timer state,
// and the current advisory message, if any.
type StatusPane struct {
	ui.LeafPane

	session   *session.Session
	statusMsg func() string
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	modeStr := " -- TIMER -- "
	if p.session.ManualMode() {
		modeStr = " -- MANUAL -- "
	}
	p.Renderer.DrawBox(x, y, len(modeStr), h, bgStyleEmph)
	p.Renderer.DrawText(x, y, len(modeStr), 1, bgStyleEmph.Bolded(), modeStr)

	if msg := p.statusMsg(); msg != "" {
		p.Renderer.DrawText(x+len(modeStr)+1, y, w-len(modeStr)-2, 1, bgStyle.Italicized(), util.TruncateAt(msg, w-len(modeStr)-2))
	}

	stateStr := p.session.State().String()
	p.Renderer.DrawText(x+w-len(stateStr)-2, y+h-1, len(stateStr), 1, bgStyleEmph.DarkenedBG(10).Italicized(), stateStr)
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	session *session.Session,
	statusMsg func() string,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		session:   session,
		statusMsg: statusMsg,
	}
}

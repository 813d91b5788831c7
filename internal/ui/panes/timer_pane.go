package panes

import (
	"fmt"

	"github.com/mxinitup/six-minute-walk-calculator/internal/session"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// TimerPane displays the timer's elapsed time and state.
type TimerPane struct {
	ui.LeafPane

	session *session.Session
}

// Draw draws this pane.
func (p *TimerPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	timeStyle := p.timeStyle()
	timeStr := p.session.DisplayString()
	p.Renderer.DrawText(x+(w/2-len(timeStr)/2), y+h/2-1, len(timeStr), 1, timeStyle.Bolded(), timeStr)

	stateStr := fmt.Sprintf("[ %s ]", p.session.State())
	p.Renderer.DrawText(x+(w/2-len(stateStr)/2), y+h/2, len(stateStr), 1, timeStyle, stateStr)

	lapStr := fmt.Sprintf("laps: %d", p.session.LapCount())
	p.Renderer.DrawText(x+(w/2-len(lapStr)/2), y+h/2+1, len(lapStr), 1, p.Stylesheet.Normal, lapStr)

	if p.session.ManualMode() {
		manualStr := util.PadCenter("MANUAL", len(timeStr))
		p.Renderer.DrawText(x+(w/2-len(manualStr)/2), y+h/2+2, len(manualStr), 1, p.Stylesheet.NormalEmphasized.Italicized(), manualStr)
	}
}

func (p *TimerPane) timeStyle() styling.DrawStyling {
	switch {
	case p.session.Finished():
		return p.Stylesheet.TimerFinished
	case p.session.Running():
		return p.Stylesheet.TimerRunning
	default:
		return p.Stylesheet.TimerIdle
	}
}

// NewTimerPane constructs and returns a new TimerPane.
func NewTimerPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	session *session.Session,
) *TimerPane {
	return &TimerPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		session: session,
	}
}

package panes

import (
	"github.com/rs/zerolog"

	"github.com/mxinitup/six-minute-walk-calculator/internal/input"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	ID ui.PaneID

	renderer ui.RenderOrchestratorControl

	dimensions func() (x, y, w, h int)

	mainPanes []ui.Pane

	logPane  ui.Pane
	helpPane ui.Pane

	performanceMetricsOverlay ui.Pane

	inputProcessor input.ModalInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

func (p *RootPane) getCurrentlyActivePanesInOrder() (active []ui.Pane, inactive []ui.Pane) {
	active = make([]ui.Pane, 0)
	inactive = make([]ui.Pane, 0)

	active = append(active, p.mainPanes...)

	// overlays are drawn over the main panes, log first so help stays readable
	if p.logPane.IsVisible() {
		active = append(active, p.logPane)
	} else {
		inactive = append(inactive, p.logPane)
	}
	if p.helpPane.IsVisible() {
		active = append(active, p.helpPane)
	} else {
		inactive = append(inactive, p.helpPane)
	}

	return active, inactive
}

func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane by clearing the screen, having all active subpanes
// draw themselves, and showing the result.
func (p *RootPane) Draw() {

	p.renderer.Clear()

	active, _ := p.getCurrentlyActivePanesInOrder()
	for _, pane := range active {
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
		p.log.Trace().Msgf("drew %d.", pane.Identify())
	}

	p.performanceMetricsOverlay.Draw()

	p.renderer.Show()
}

func (p *RootPane) Undraw() {
	p.renderer.Clear()

	active, inactive := p.getCurrentlyActivePanesInOrder()
	for _, pane := range active {
		pane.Undraw()
	}
	for _, pane := range inactive {
		pane.Undraw()
	}

	p.performanceMetricsOverlay.Undraw()

	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	if focussed := p.focussedPane(); focussed != nil && focussed.CapturesInput() {
		return true
	}
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {

	if p.inputProcessor.CapturesInput() {
		return p.inputProcessor.ProcessInput(key)
	}

	if focussed := p.focussedPane(); focussed != nil {
		if focussed.CapturesInput() {
			return focussed.ProcessInput(key)
		}
		if focussed.ProcessInput(key) {
			return true
		}
	}

	return p.inputProcessor.ProcessInput(key)
}

func (p *RootPane) Identify() ui.PaneID { return p.ID }
func (p *RootPane) HasFocus() bool      { return true }
func (p *RootPane) Focusses() ui.PaneID {
	if focussed := p.focussedPane(); focussed != nil {
		return focussed.Identify()
	}
	return ui.NonePaneID
}
func (p *RootPane) FocusPrev() {}
func (p *RootPane) FocusNext() {}

// focussedPane returns the topmost visible overlay pane, nil if none is
// visible (in which case input falls to the root's own input processor).
func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.logPane.IsVisible():
		return p.logPane
	default:
		return nil
	}
}

func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}

	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	if focussed := p.focussedPane(); focussed != nil {
		for k, v := range focussed.GetHelp() {
			result[k] = v
		}
	}

	return result
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	dimensions func() (x, y, w, h int),
	mainPanes []ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	performanceMetricsOverlay ui.Pane,
	inputProcessor input.ModalInputProcessor,
	log zerolog.Logger,
) *RootPane {
	rootPane := &RootPane{
		ID:                        ui.GeneratePaneID(),
		renderer:                  renderer,
		dimensions:                dimensions,
		mainPanes:                 mainPanes,
		logPane:                   logPane,
		helpPane:                  helpPane,
		performanceMetricsOverlay: performanceMetricsOverlay,
		inputProcessor:            inputProcessor,
		log:                       log,
	}
	for _, pane := range mainPanes {
		pane.SetParent(rootPane)
	}
	logPane.SetParent(rootPane)
	helpPane.SetParent(rootPane)
	return rootPane
}

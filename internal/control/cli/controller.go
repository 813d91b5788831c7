package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/mxinitup/six-minute-walk-calculator/internal/buflog"
	"github.com/mxinitup/six-minute-walk-calculator/internal/clock"
	"github.com/mxinitup/six-minute-walk-calculator/internal/control"
	"github.com/mxinitup/six-minute-walk-calculator/internal/control/action"
	"github.com/mxinitup/six-minute-walk-calculator/internal/input"
	"github.com/mxinitup/six-minute-walk-calculator/internal/input/processors"
	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
	"github.com/mxinitup/six-minute-walk-calculator/internal/session"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/tui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui/panes"
)

// refreshInterval is how often a running timer's display is refreshed.
const refreshInterval = 100 * time.Millisecond

type controllerEvent int

const (
	controllerEventRender controllerEvent = iota
	controllerEventExit
)

// Controller is the TUI controller for a walk-test session.
// It wires the session and its input areas to the pane tree and runs the
// render and event loops.
type Controller struct {
	data     *control.ControlData
	rootPane *panes.RootPane

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer

	controllerEvents chan controllerEvent
}

// NewController constructs and returns a new Controller.
func NewController(stylesheet styling.Stylesheet) (*Controller, error) {
	controller := Controller{}

	controller.data = control.NewControlData(session.New(clock.Real{}))
	data := controller.data

	renderer := tui.NewTUIScreenHandler()
	screenSize := func() (w, h int) { _, _, w, h = renderer.Dimensions(); return }
	screenDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, 0, screenWidth, screenHeight
	}
	helpDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return screenWidth/8, screenHeight/8, screenWidth - screenWidth/4, screenHeight - screenHeight/4
	}
	logDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, 0, screenWidth, screenHeight - statusHeight
	}

	leftWidth := func() int { screenWidth, _ := screenSize(); return screenWidth / 3 }

	timerDimensions := func() (x, y, w, h int) {
		return 0, 0, leftWidth(), timerHeight
	}
	lapsDimensions := func() (x, y, w, h int) {
		_, screenHeight := screenSize()
		return 0, timerHeight, leftWidth(), screenHeight - timerHeight - statusHeight
	}
	tableDimensions := func() (x, y, w, h int) {
		screenWidth, _ := screenSize()
		return leftWidth(), 0, screenWidth - leftWidth(), tableHeight
	}
	checkpointsDimensions := func() (x, y, w, h int) {
		screenWidth, _ := screenSize()
		return leftWidth(), tableHeight, screenWidth - leftWidth(), checkpointsHeight
	}
	resultsDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return leftWidth(), tableHeight + checkpointsHeight, screenWidth - leftWidth(), screenHeight - tableHeight - checkpointsHeight - statusHeight
	}
	statusDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, screenHeight - statusHeight, screenWidth, statusHeight
	}

	timerPane := panes.NewTimerPane(
		ui.NewConstrainedRenderer(renderer, timerDimensions),
		timerDimensions,
		stylesheet,
		data.Session,
	)
	lapsPane := panes.NewLapsPane(
		ui.NewConstrainedRenderer(renderer, lapsDimensions),
		lapsDimensions,
		stylesheet,
		data.Session.Laps,
	)
	tablePane := panes.NewTablePane(
		ui.NewConstrainedRenderer(renderer, tableDimensions),
		tableDimensions,
		stylesheet,
		func(i int) string { return data.ManualCells[i] },
		func() int { return control.ManualCellCount },
		func() (int, bool) { return data.FocusIndex, data.Focus == control.FocusTable },
		func() (string, bool) { return data.EditBuffer, data.Editing && data.Focus == control.FocusTable },
	)
	checkpointsPane := panes.NewCheckpointsPane(
		ui.NewConstrainedRenderer(renderer, checkpointsDimensions),
		checkpointsDimensions,
		stylesheet,
		func(i int) string { return data.CheckpointPositions[i] },
		func(i int) model.Direction { return data.CheckpointDirections[i] },
		func() (int, bool) { return data.FocusIndex, data.Focus == control.FocusCheckpoints },
		func() (string, bool) { return data.EditBuffer, data.Editing && data.Focus == control.FocusCheckpoints },
	)
	resultsPane := panes.NewResultsPane(
		ui.NewConstrainedRenderer(renderer, resultsDimensions),
		resultsDimensions,
		stylesheet,
		func() *model.WalkResult { return data.Result },
	)
	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(renderer, statusDimensions),
		statusDimensions,
		stylesheet,
		data.Session,
		func() string { return data.StatusMsg },
	)

	helpPaneInputTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     action.NewSimple(func() string { return "close help" }, func() { data.ShowHelp = false }),
		"<esc>": action.NewSimple(func() string { return "close help" }, func() { data.ShowHelp = false }),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for help pane (%w)", err)
	}
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(renderer, helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return data.ShowHelp },
		processors.NewModalInputProcessor(helpPaneInputTree),
	)

	logPaneInputTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"g":     action.NewSimple(func() string { return "close log" }, func() { data.ShowLog = false }),
		"<esc>": action.NewSimple(func() string { return "close log" }, func() { data.ShowLog = false }),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for log pane (%w)", err)
	}
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(renderer, logDimensions),
		logDimensions,
		stylesheet,
		func() bool { return data.ShowLog },
		func() string { return "LOG" },
		&buflog.Global,
		processors.NewModalInputProcessor(logPaneInputTree),
	)

	var helpContentRegister func()
	rootPaneInputTree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"<space>": action.NewSimple(func() string { return "record a lap" }, controller.recordLap),
			"s":       action.NewSimple(func() string { return "start or stop the timer" }, controller.toggleTimer),
			"r":       action.NewSimple(func() string { return "reset the timer and its laps" }, controller.resetTimer),
			"m":       action.NewSimple(func() string { return "toggle manual lap entry" }, controller.toggleManualMode),
			"c":       action.NewSimple(func() string { return "calculate the distance table" }, controller.calculate),
			"C":       action.NewSimple(func() string { return "clear everything" }, controller.clearAll),
			"j":       action.NewSimple(func() string { return "focus next field" }, func() { data.MoveFocus(1) }),
			"k":       action.NewSimple(func() string { return "focus previous field" }, func() { data.MoveFocus(-1) }),
			"i":       action.NewSimple(func() string { return "edit the focused field" }, controller.startEdit),
			"o":       action.NewSimple(func() string { return "set focused checkpoint to the outbound leg" }, func() { controller.setDirection(model.DirectionOut) }),
			"b":       action.NewSimple(func() string { return "set focused checkpoint to the return leg" }, func() { controller.setDirection(model.DirectionBack) }),
			"g":       action.NewSimple(func() string { return "toggle log" }, func() { data.ShowLog = !data.ShowLog }),
			"P":       action.NewSimple(func() string { return "show debug perf pane" }, func() { data.ShowDebug = !data.ShowDebug }),
			"?": action.NewSimple(func() string { return "toggle help" }, func() {
				helpContentRegister()
				data.ShowHelp = true
			}),
			"q": action.NewSimple(func() string { return "exit program" }, func() { controller.controllerEvents <- controllerEventExit }),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for root pane (%w)", err)
	}

	rootPane := panes.NewRootPane(
		renderer,
		screenDimensions,
		[]ui.Pane{
			timerPane,
			lapsPane,
			tablePane,
			checkpointsPane,
			resultsPane,
			statusPane,
		},
		logPane,
		helpPane,
		panes.NewPerfPane(
			ui.NewConstrainedRenderer(renderer, func() (x, y, w, h int) { return 2, 2, 50, 2 }),
			func() (x, y, w, h int) { return 2, 2, 50, 2 },
			func() bool { return data.ShowDebug },
			&data.RenderTimes,
			&data.EventProcessingTimes,
		),
		processors.NewModalInputProcessor(rootPaneInputTree),
		log.Logger,
	)
	rootPaneInputTree.Root.Children[input.Key{Key: tcell.KeyESC}] = &input.Node{
		Action: action.NewSimple(func() string { return "exit program" }, func() { controller.controllerEvents <- controllerEventExit }),
	}

	helpContentRegister = func() {
		helpPane.Content = rootPane.GetHelp()
	}

	controller.rootPane = rootPane
	controller.screenEvents = renderer.GetEventPollable()
	controller.initializedScreen = renderer
	controller.syncer = renderer

	return &controller, nil
}

const (
	statusHeight      = 1
	timerHeight       = 8
	tableHeight       = 6
	checkpointsHeight = 8
)

// recordLap records a lap at the current elapsed time; a rejected double-tap
// surfaces in the status bar.
func (c *Controller) recordLap() {
	if err := c.data.Session.RecordLap(); err != nil {
		c.data.StatusMsg = err.Error()
	} else {
		c.data.StatusMsg = ""
	}
}

func (c *Controller) toggleTimer() {
	s := c.data.Session
	switch {
	case s.Running():
		s.Stop()
	case s.Finished():
		c.data.StatusMsg = "test finished; reset to time another walk"
	case s.ManualMode():
		c.data.StatusMsg = "timer is off in manual mode"
	default:
		s.Start()
	}
}

func (c *Controller) resetTimer() {
	c.data.Session.Reset()
	c.data.StatusMsg = ""
}

// toggleManualMode switches between live timing and manual table entry.
// On first entry with recorded laps and a blank table, the table is seeded
// from the ledger so recorded laps can be corrected by hand.
func (c *Controller) toggleManualMode() {
	if c.data.Session.ManualMode() {
		c.data.Session.SetManualMode(false)
		return
	}
	c.enterManualMode()
}

func (c *Controller) enterManualMode() {
	if c.data.Session.ManualMode() {
		return
	}
	c.data.Session.SetManualMode(true)

	tableBlank := true
	for i := range c.data.ManualCells {
		if c.data.ManualCells[i] != "" {
			tableBlank = false
			break
		}
	}
	if tableBlank {
		for i, t := range c.data.Session.Laps() {
			if i >= control.ManualCellCount {
				break
			}
			c.data.ManualCells[i] = t.String()
		}
	}
}

// calculate reconstructs the distance table. In manual mode the table is
// submitted first, so the ledger always reflects the cells' current text.
func (c *Controller) calculate() {
	c.data.StatusMsg = ""

	if c.data.Session.ManualMode() {
		if err := c.data.Session.SubmitManualTable(c.data.ManualCells[:]); err != nil {
			c.data.StatusMsg = err.Error()
			return
		}
	}

	checkpoints, err := c.data.Checkpoints()
	if err != nil {
		c.data.StatusMsg = err.Error()
		return
	}

	result, err := c.data.Session.Calculate(checkpoints)
	if err != nil {
		c.data.StatusMsg = err.Error()
		return
	}
	c.data.Result = result
	c.data.StatusMsg = fmt.Sprintf("total distance: %.1fm", result.TotalDistance)
}

func (c *Controller) clearAll() {
	c.data.Session.ClearAll()
	for i := range c.data.ManualCells {
		c.data.ManualCells[i] = ""
	}
	for i := range c.data.CheckpointPositions {
		c.data.CheckpointPositions[i] = ""
		c.data.CheckpointDirections[i] = model.DirectionOut
	}
	c.data.Result = nil
	c.data.StatusMsg = ""
}

func (c *Controller) setDirection(d model.Direction) {
	if c.data.Focus != control.FocusCheckpoints {
		c.data.StatusMsg = "leg selection applies to a focused checkpoint"
		return
	}
	c.data.CheckpointDirections[c.data.FocusIndex] = d
}

// startEdit overlays a text input processor editing the focused field.
// Editing a lap table cell implies manual entry and therefore stops a
// running timer.
func (c *Controller) startEdit() {
	if c.data.Editing {
		return
	}

	data := c.data
	if data.Focus == control.FocusTable {
		c.enterManualMode()
		data.EditBuffer = data.ManualCells[data.FocusIndex]
	} else {
		data.EditBuffer = data.CheckpointPositions[data.FocusIndex]
	}
	data.Editing = true

	var overlayIndex uint
	endEdit := func(commit bool) {
		if commit {
			if data.Focus == control.FocusTable {
				data.ManualCells[data.FocusIndex] = data.EditBuffer
			} else {
				data.CheckpointPositions[data.FocusIndex] = data.EditBuffer
			}
		}
		data.Editing = false
		data.EditBuffer = ""
		c.rootPane.PopModalOverlays(overlayIndex)
	}

	backspace := action.NewSimple(func() string { return "delete the last character" }, func() {
		if len(data.EditBuffer) > 0 {
			runes := []rune(data.EditBuffer)
			data.EditBuffer = string(runes[:len(runes)-1])
		}
	})

	overlayIndex = c.rootPane.ApplyModalOverlay(processors.NewTextInputProcessor(
		map[input.Key]action.Action{
			{Key: tcell.KeyESC}:        action.NewSimple(func() string { return "abort the edit" }, func() { endEdit(false) }),
			{Key: tcell.KeyEnter}:      action.NewSimple(func() string { return "commit the edit" }, func() { endEdit(true) }),
			{Key: tcell.KeyBackspace}:  backspace,
			{Key: tcell.KeyBackspace2}: backspace,
		},
		func(r rune) { data.EditBuffer += string(r) },
	))
}

func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the controller's loops until prompted to exit.
func (c *Controller) Run() {
	log.Info().Msg("walktest TUI started")

	c.controllerEvents = make(chan controllerEvent, 32)
	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.initializedScreen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				start := time.Now()

				// empty all further render events before rendering
				exitEventEncounteredOnEmpty := emptyRenderEvents(c.controllerEvents)
				// exit if an exit event was coming up
				if exitEventEncounteredOnEmpty {
					return
				}
				// render
				c.rootPane.Draw()

				end := time.Now()
				c.data.RenderTimes.Add(uint64(end.Sub(start).Microseconds()))

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	// Run the refresh loop, that keeps a running timer's display current.
	// A tick with the timer not running is deliberately harmless: Poll is a
	// no-op then, and the extra render is cheap.
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for range ticker.C {
			wasRunning := c.data.Session.Running()
			c.data.Session.Poll()
			if wasRunning {
				c.controllerEvents <- controllerEventRender
			}
		}
	}()

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()

			start := time.Now()

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				inputApplied := c.rootPane.ProcessInput(key)
				if !inputApplied {
					log.Warn().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}

			case *tcell.EventResize:
				c.syncer.NeedsSync()

			}

			end := time.Now()
			c.data.EventProcessingTimes.Add(uint64(end.Sub(start).Microseconds()))

			c.controllerEvents <- controllerEventRender
		}
	}()

	// initial render
	c.controllerEvents <- controllerEventRender

	wg.Wait()
}

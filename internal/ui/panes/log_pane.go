package panes

import (
	"fmt"
	"sort"

	"github.com/mxinitup/six-minute-walk-calculator/internal/buflog"
	"github.com/mxinitup/six-minute-walk-calculator/internal/input"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
	"github.com/mxinitup/six-minute-walk-calculator/internal/ui"
	"github.com/mxinitup/six-minute-walk-calculator/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader buflog.Reader

	titleString func() string
}

// Draw draws the log view over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {

	if p.IsVisible() {
		x, y, w, h := p.Dimensions()
		row := 2

		entryField := func(entry buflog.Entry, key string) string {
			value, ok := entry[key]
			if !ok {
				return ""
			}
			return fmt.Sprint(value)
		}

		p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
		title := p.titleString()
		p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
		p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.LogTitleBox, title)
		for i := len(p.logReader.Get()) - 1; i >= 0; i-- {
			entry := p.logReader.Get()[i]

			levelLen := len(" error ")
			extraDataIndentWidth := levelLen + 1
			level := entryField(entry, "level")
			p.Renderer.DrawText(
				x, y+row, levelLen, 1,
				func() styling.DrawStyling {
					switch level {
					case "error":
						return p.Stylesheet.LogEntryTypeError
					case "warn":
						return p.Stylesheet.LogEntryTypeWarn
					case "info":
						return p.Stylesheet.LogEntryTypeInfo
					case "debug":
						return p.Stylesheet.LogEntryTypeDebug
					case "trace":
						return p.Stylesheet.LogEntryTypeTrace
					}
					return p.Stylesheet.LogDefault
				}(),
				util.PadCenter(level, levelLen),
			)
			x = extraDataIndentWidth

			message := entryField(entry, "message")
			p.Renderer.DrawText(x, y+row, w, 1, p.Stylesheet.LogDefault, message)
			x += len(message) + 1

			caller := entryField(entry, "caller")
			p.Renderer.DrawText(x, y+row, w, 1, p.Stylesheet.LogEntryLocation, caller)
			x += len(caller) + 1

			timeStr := entryField(entry, "time")
			p.Renderer.DrawText(x, y+row, w, 1, p.Stylesheet.LogEntryTime, timeStr)

			x = extraDataIndentWidth
			row++

			keys := make([]string, len(entry))
			i := 0
			for k := range entry {
				keys[i] = k
				i++
			}
			sort.Strings(keys)
			for _, k := range keys {
				if k != "caller" && k != "message" && k != "time" && k != "level" {
					p.Renderer.DrawText(x, y+row, w, 1, p.Stylesheet.LogEntryTime, k)
					p.Renderer.DrawText(x+len(k)+2, y+row, w, 1, p.Stylesheet.LogEntryLocation, entryField(entry, k))
					row++
				}
			}

			x = 0
		}
	}
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader buflog.Reader,
	inputProcessor input.ModalInputProcessor,
) *LogPane {
	p := &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
	p.InputProcessor = inputProcessor
	return p
}

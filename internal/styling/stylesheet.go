package styling

import (
	"github.com/mxinitup/six-minute-walk-calculator/internal/config"
)

// Stylesheet is the collection of stylings used throughout the TUI.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	TimerIdle     DrawStyling
	TimerRunning  DrawStyling
	TimerFinished DrawStyling

	LapsDefault  DrawStyling
	LapsTitleBox DrawStyling

	TableDefault  DrawStyling
	TableTitleBox DrawStyling
	TableFocused  DrawStyling

	ResultsDefault  DrawStyling
	ResultsTitleBox DrawStyling

	Status DrawStyling

	LogDefault        DrawStyling
	LogTitleBox       DrawStyling
	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling
	LogEntryLocation  DrawStyling
	LogEntryTime      DrawStyling

	Help   DrawStyling
	Editor DrawStyling
}

// NewStylesheetFromConfig constructs a stylesheet from the given config
// stylesheet definition.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	return &Stylesheet{
		Normal:           StyleFromConfig(config.Normal),
		NormalEmphasized: StyleFromConfig(config.NormalEmphasized),

		TimerIdle:     StyleFromConfig(config.TimerIdle),
		TimerRunning:  StyleFromConfig(config.TimerRunning),
		TimerFinished: StyleFromConfig(config.TimerFinished),

		LapsDefault:  StyleFromConfig(config.LapsDefault),
		LapsTitleBox: StyleFromConfig(config.LapsTitleBox),

		TableDefault:  StyleFromConfig(config.TableDefault),
		TableTitleBox: StyleFromConfig(config.TableTitleBox),
		TableFocused:  StyleFromConfig(config.TableFocused),

		ResultsDefault:  StyleFromConfig(config.ResultsDefault),
		ResultsTitleBox: StyleFromConfig(config.ResultsTitleBox),

		Status: StyleFromConfig(config.Status),

		LogDefault:        StyleFromConfig(config.LogDefault),
		LogTitleBox:       StyleFromConfig(config.LogTitleBox),
		LogEntryTypeError: StyleFromConfig(config.LogEntryTypeError),
		LogEntryTypeWarn:  StyleFromConfig(config.LogEntryTypeWarn),
		LogEntryTypeInfo:  StyleFromConfig(config.LogEntryTypeInfo),
		LogEntryTypeDebug: StyleFromConfig(config.LogEntryTypeDebug),
		LogEntryTypeTrace: StyleFromConfig(config.LogEntryTypeTrace),
		LogEntryLocation:  StyleFromConfig(config.LogEntryLocation),
		LogEntryTime:      StyleFromConfig(config.LogEntryTime),

		Help:   StyleFromConfig(config.Help),
		Editor: StyleFromConfig(config.Editor),
	}
}

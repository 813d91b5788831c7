package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mxinitup/six-minute-walk-calculator/internal/buflog"
	"github.com/mxinitup/six-minute-walk-calculator/internal/config"
	"github.com/mxinitup/six-minute-walk-calculator/internal/styling"
)

// TuiCommand is the command `tui`, which runs the interactive walk-test
// timer.
type TuiCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs only go to the in-TUI log)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the TUI command.
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger, which logs to an in-memory sink that the TUI's log
	// pane renders (the terminal itself is occupied by the TUI)
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &buflog.Global)
	} else {
		logWriter = &buflog.Global
	}
	log.Logger = zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	case "dark":
		theme = config.Dark
	default:
		theme = config.Dark
	}

	// read config from file
	baseDirPath := os.Getenv("WALKTEST_HOME")
	if baseDirPath == "" {
		baseDirPath = os.Getenv("HOME") + "/.config/walktest"
	} else {
		baseDirPath = strings.TrimRight(baseDirPath, "/")
	}
	yamlData, err := os.ReadFile(baseDirPath + "/" + "config.yaml")
	if err != nil {
		log.Warn().Err(err).Str("file", baseDirPath+"/config.yaml").Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't parse config data")
	}

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	controller, err := NewController(*stylesheet)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("could not set up the TUI controller")
	}

	controller.Run()
	return nil
}

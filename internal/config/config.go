package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${WALKTEST_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal           Styling `yaml:"normal"`
	NormalEmphasized Styling `yaml:"normal-emphasized"`

	TimerIdle     Styling `yaml:"timer-idle"`
	TimerRunning  Styling `yaml:"timer-running"`
	TimerFinished Styling `yaml:"timer-finished"`

	LapsDefault  Styling `yaml:"laps-default"`
	LapsTitleBox Styling `yaml:"laps-title-box"`

	TableDefault  Styling `yaml:"table-default"`
	TableTitleBox Styling `yaml:"table-title-box"`
	TableFocused  Styling `yaml:"table-focused"`

	ResultsDefault  Styling `yaml:"results-default"`
	ResultsTitleBox Styling `yaml:"results-title-box"`

	Status Styling `yaml:"status"`

	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`

	Help   Styling `yaml:"help"`
	Editor Styling `yaml:"editor"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Dark:
		defaultConfig = Default(Dark)
	case Light:
		defaultConfig = Default(Light)
	}

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.NormalEmphasized.overwriteIfDefined(augment.NormalEmphasized)
	result.TimerIdle.overwriteIfDefined(augment.TimerIdle)
	result.TimerRunning.overwriteIfDefined(augment.TimerRunning)
	result.TimerFinished.overwriteIfDefined(augment.TimerFinished)
	result.LapsDefault.overwriteIfDefined(augment.LapsDefault)
	result.LapsTitleBox.overwriteIfDefined(augment.LapsTitleBox)
	result.TableDefault.overwriteIfDefined(augment.TableDefault)
	result.TableTitleBox.overwriteIfDefined(augment.TableTitleBox)
	result.TableFocused.overwriteIfDefined(augment.TableFocused)
	result.ResultsDefault.overwriteIfDefined(augment.ResultsDefault)
	result.ResultsTitleBox.overwriteIfDefined(augment.ResultsTitleBox)
	result.Status.overwriteIfDefined(augment.Status)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)
	result.Editor.overwriteIfDefined(augment.Editor)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)

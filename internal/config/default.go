package config

// Default returns the default colorscheme for the given type (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			NormalEmphasized:  Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
			TimerIdle:         Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			TimerRunning:      Styling{Fg: "#c2edab", Bg: "#000000", Style: &FontStyle{Bold: true}},
			TimerFinished:     Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{Bold: true}},
			LapsDefault:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			LapsTitleBox:      Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			TableDefault:      Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			TableTitleBox:     Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			TableFocused:      Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
			ResultsDefault:    Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			ResultsTitleBox:   Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
			Editor:            Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
		}
	} else {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			NormalEmphasized:  Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			TimerIdle:         Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{}},
			TimerRunning:      Styling{Fg: "#3a751a", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			TimerFinished:     Styling{Fg: "#ffffff", Bg: "#ff0000", Style: &FontStyle{Bold: true}},
			LapsDefault:       Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LapsTitleBox:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			TableDefault:      Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			TableTitleBox:     Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			TableFocused:      Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
			ResultsDefault:    Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			ResultsTitleBox:   Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Editor:            Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
		}
	}
}

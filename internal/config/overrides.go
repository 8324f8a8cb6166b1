package config

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config
// default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Unicode box drawing
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// WindowTitlePosition overrides the window title position
	WindowTitlePosition string

	// HideStatusBar overrides hiding the status bar
	HideStatusBar bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to the global config, falling
// back to user config values where no flag was set. If userConfig is nil,
// only the flag values are applied. Returns the theme name to initialize,
// empty when theming stays disabled.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) string {
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border style: CLI flag takes precedence over user config.
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Title position: CLI flag takes precedence over user config.
	if overrides.WindowTitlePosition != "" {
		WindowTitlePosition = overrides.WindowTitlePosition
	} else if userConfig != nil && userConfig.Appearance.WindowTitlePosition != "" {
		WindowTitlePosition = userConfig.Appearance.WindowTitlePosition
	}

	// Status bar: OR of CLI flag and user config.
	if userConfig != nil {
		HideStatusBar = overrides.HideStatusBar || userConfig.Appearance.HideStatusBar
	} else {
		HideStatusBar = overrides.HideStatusBar
	}

	// Assumed terminal geometry comes only from user config.
	if userConfig != nil {
		if userConfig.Terminal.AssumedColumns > 0 {
			AssumedTerminalWidth = userConfig.Terminal.AssumedColumns
		}
		if userConfig.Terminal.AssumedRows > 0 {
			AssumedTerminalHeight = userConfig.Terminal.AssumedRows
		}
	}

	// Theme: CLI flag takes precedence over user config.
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil {
		themeName = userConfig.Appearance.Theme
	}
	return themeName
}

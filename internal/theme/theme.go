// Package theme provides color themes for window chrome and overlays.
package theme

import (
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup. If themeName is empty, theming is
// disabled and the hardcoded fallback colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Custom themes from the user's themes directory can shadow built-ins.
	if themesDir, err := ThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Available returns the IDs of all registered themes, custom themes
// included. The registry is created on demand so this works before
// Initialize.
func Available() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := ThemesDir(); err == nil {
		_, _ = LoadCustomThemes(themesDir)
	}
	return tint.TintIDs()
}

// ANSIPalette returns the 16 ANSI colors (0-15) from the current theme,
// or the default xterm palette when theming is disabled.
func ANSIPalette() [16]color.Color {
	t := Current()
	if t == nil {
		return [16]color.Color{
			lipgloss.Color("#000000"), lipgloss.Color("#cd0000"), lipgloss.Color("#00cd00"), lipgloss.Color("#cdcd00"),
			lipgloss.Color("#0000ee"), lipgloss.Color("#cd00cd"), lipgloss.Color("#00cdcd"), lipgloss.Color("#e5e5e5"),
			lipgloss.Color("#7f7f7f"), lipgloss.Color("#ff0000"), lipgloss.Color("#00ff00"), lipgloss.Color("#ffff00"),
			lipgloss.Color("#5c5cff"), lipgloss.Color("#ff00ff"), lipgloss.Color("#00ffff"), lipgloss.Color("#ffffff"),
		}
	}
	return [16]color.Color{
		t.Black, t.Red, t.Green, t.Yellow,
		t.Blue, t.Purple, t.Cyan, t.White,
		t.BrightBlack, t.BrightRed, t.BrightGreen, t.BrightYellow,
		t.BrightBlue, t.BrightPurple, t.BrightCyan, t.BrightWhite,
	}
}

// BorderUnfocused returns the border color for unfocused windows.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FAAAAA")
	}
	return t.Red
}

// BorderFocused returns the border color for the focused window.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// StatusBarBg returns the status bar background color.
func StatusBarBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1a1a2e")
	}
	return t.Bg
}

// StatusBarFg returns the status bar text color.
func StatusBarFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// StatusBarAccent returns the highlight color for status bar counters.
func StatusBarAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#4865f2")
	}
	return t.BrightBlue
}

// LogError returns the color for error entries in the log overlay.
func LogError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FF5555")
	}
	return t.BrightRed
}

// LogWarn returns the color for warning entries in the log overlay.
func LogWarn() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FFFF55")
	}
	return t.BrightYellow
}

// LogInfo returns the color for info entries in the log overlay.
func LogInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#55FFFF")
	}
	return t.BrightCyan
}

// Package config provides configuration constants and user settings.
package config

import (
	"charm.land/lipgloss/v2"
)

// =============================================================================
// Window Defaults
// =============================================================================

const (
	// DefaultWindowWidth is the default preferred content width for new windows
	DefaultWindowWidth = 20

	// DefaultWindowHeight is the default preferred content height for new windows
	DefaultWindowHeight = 5
)

// =============================================================================
// Terminal Size Defaults
// =============================================================================

const (
	// DefaultTerminalWidth is the assumed terminal width before the first
	// real resize event arrives
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the assumed terminal height before the first
	// real resize event arrives
	DefaultTerminalHeight = 24
)

// =============================================================================
// Placement Geometry
// =============================================================================

const (
	// CascadeColumnOffset is how far right each cascaded window starts
	// relative to the previous one
	CascadeColumnOffset = 2

	// CascadeRowOffset is how far down each cascaded window starts
	// relative to the previous one
	CascadeRowOffset = 1

	// ExpandedMarginColumns is the horizontal margin reserved around
	// expanded windows (capped at the terminal width)
	ExpandedMarginColumns = 4

	// ExpandedMarginRows is the vertical margin reserved around expanded
	// windows (capped at the terminal height)
	ExpandedMarginRows = 3

	// BorderWidth is the width of window borders (2 for left and right)
	BorderWidth = 2

	// BorderHeight is the height of window borders (2 for top and bottom)
	BorderHeight = 2
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate during regular operation
	NormalFPS = 60
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// StatusBarHeight is the height of the status bar at the bottom
	StatusBarHeight = 1

	// LogOverlayWidth is the width of the log viewer overlay
	LogOverlayWidth = 80

	// MaxTitleLength is the max title length before truncating with ellipsis
	MaxTitleLength = 24
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexBase is the base z-index for regular windows
	ZIndexBase = 0

	// ZIndexStatusBar is the z-index for the status bar
	ZIndexStatusBar = 1000

	// ZIndexLogs is the z-index for the log viewer overlay
	ZIndexLogs = 1001
)

// =============================================================================
// Limits
// =============================================================================

const (
	// MaxLogMessages is the maximum number of log messages to keep in memory
	MaxLogMessages = 100
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters instead of
// Unicode box drawing. Set via --ascii-only command-line flag.
var UseASCIIOnly = false

// BorderStyle controls which border style to use for windows
// Set via --border-style flag or appearance.border_style config
var BorderStyle = "rounded"

// WindowTitlePosition controls where window titles are displayed
// Options: top, bottom, hidden
// Set via --title-position flag or appearance.window_title_position config
var WindowTitlePosition = "top"

// HideStatusBar controls whether the status bar is hidden
// Set via --no-status-bar flag or appearance.hide_status_bar config
var HideStatusBar = false

// AssumedTerminalWidth is the terminal width assumed before the first resize
// Set via terminal.assumed_columns config
var AssumedTerminalWidth = DefaultTerminalWidth

// AssumedTerminalHeight is the terminal height assumed before the first resize
// Set via terminal.assumed_rows config
var AssumedTerminalHeight = DefaultTerminalHeight

// =============================================================================
// Window Decoration Characters
// =============================================================================

const (
	// WindowPillLeft is the left pill-style character for title badges.
	WindowPillLeft = string(rune(0xe0b6))
	// WindowPillRight is the right pill-style character for title badges.
	WindowPillRight = string(rune(0xe0b4))

	// WindowPillLeftASCII is the ASCII fallback for the left badge character.
	WindowPillLeftASCII = "["
	// WindowPillRightASCII is the ASCII fallback for the right badge character.
	WindowPillRightASCII = "]"
)

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// Window decoration getter functions

// GetWindowBorderTopLeft returns the top-left border character
func GetWindowBorderTopLeft() string {
	return GetBorderForStyle().TopLeft
}

// GetWindowBorderTopRight returns the top-right border character
func GetWindowBorderTopRight() string {
	return GetBorderForStyle().TopRight
}

// GetWindowBorderBottomLeft returns the bottom-left border character
func GetWindowBorderBottomLeft() string {
	return GetBorderForStyle().BottomLeft
}

// GetWindowBorderBottomRight returns the bottom-right border character
func GetWindowBorderBottomRight() string {
	return GetBorderForStyle().BottomRight
}

// GetWindowBorderTop returns the top border character
func GetWindowBorderTop() string {
	return GetBorderForStyle().Top
}

// GetWindowBorderBottom returns the bottom border character
func GetWindowBorderBottom() string {
	return GetBorderForStyle().Bottom
}

// GetWindowBorderLeft returns the left border character
func GetWindowBorderLeft() string {
	return GetBorderForStyle().Left
}

// GetWindowBorderRight returns the right border character
func GetWindowBorderRight() string {
	return GetBorderForStyle().Right
}

// GetWindowPillLeft returns the left badge character
func GetWindowPillLeft() string {
	if UseASCIIOnly {
		return WindowPillLeftASCII
	}
	return WindowPillLeft
}

// GetWindowPillRight returns the right badge character
func GetWindowPillRight() string {
	if UseASCIIOnly {
		return WindowPillRightASCII
	}
	return WindowPillRight
}

package wm

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/nguyenmp/lanterna/internal/config"
	"github.com/nguyenmp/lanterna/internal/geom"
	"github.com/nguyenmp/lanterna/internal/theme"
)

// DecorationRenderer computes and draws the chrome (border and title) around
// a window's content. DecoratedSize must be pure; the manager may call it
// several times per preparation pass.
type DecorationRenderer interface {
	// DecoratedSize returns the window's total size for the given content
	// size, chrome included.
	DecoratedSize(window Window, contentSize geom.TerminalSize) geom.TerminalSize

	// Render draws the frame around already-rendered content. The content
	// is expected to fit the window's decorated size minus the chrome.
	Render(window Window, content string, focused bool) string
}

// EmptyDecorationRenderer adds no chrome at all. Selected automatically for
// windows with HintNoDecorations.
type EmptyDecorationRenderer struct{}

// DecoratedSize returns the content size unchanged.
func (EmptyDecorationRenderer) DecoratedSize(_ Window, contentSize geom.TerminalSize) geom.TerminalSize {
	return contentSize
}

// Render returns the content unchanged.
func (EmptyDecorationRenderer) Render(_ Window, content string, _ bool) string {
	return content
}

// StandardDecorationRenderer draws the configured border style with a title
// badge on the top or bottom border line.
type StandardDecorationRenderer struct{}

// NewStandardDecorationRenderer creates the default bordered renderer.
func NewStandardDecorationRenderer() *StandardDecorationRenderer {
	return &StandardDecorationRenderer{}
}

// DecoratedSize adds one border cell on each side of the content.
func (r *StandardDecorationRenderer) DecoratedSize(_ Window, contentSize geom.TerminalSize) geom.TerminalSize {
	return contentSize.WithRelative(config.BorderWidth, config.BorderHeight)
}

// Render frames the content with the configured border and overlays the
// window title. Degenerate rectangles render as nothing.
func (r *StandardDecorationRenderer) Render(window Window, content string, focused bool) string {
	decorated := window.DecoratedSize()
	innerWidth := decorated.Columns - config.BorderWidth
	innerHeight := decorated.Rows - config.BorderHeight
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	borderColor := theme.BorderUnfocused()
	if focused {
		borderColor = theme.BorderFocused()
	}

	framed := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(borderColor).
		Width(innerWidth).
		Height(innerHeight).
		MaxWidth(decorated.Columns).
		Render(content)

	title := displayTitle(window.Title(), innerWidth)
	if title == "" || config.WindowTitlePosition == "hidden" {
		return framed
	}

	lines := strings.Split(framed, "\n")
	if config.WindowTitlePosition == "bottom" {
		lines[len(lines)-1] = renderTitleBadge(title, innerWidth, borderColor, false)
	} else {
		lines[0] = renderTitleBadge(title, innerWidth, borderColor, true)
	}
	return strings.Join(lines, "\n")
}

// displayTitle truncates a title so the badge fits within maxWidth border
// cells. Returns empty if there is no room for a readable title.
func displayTitle(title string, maxWidth int) string {
	if title == "" {
		return ""
	}

	// Badge chrome: pill characters plus one space of padding each side.
	maxNameLen := min(max(maxWidth-4, 0), config.MaxTitleLength)
	nameWidth := ansi.StringWidth(title)
	if nameWidth <= maxNameLen {
		return title
	}
	if maxNameLen <= 3 {
		return ""
	}

	runes := []rune(title)
	truncated := string(runes)
	for ansi.StringWidth(truncated) > maxNameLen-3 && len(runes) > 0 {
		runes = runes[:len(runes)-1]
		truncated = string(runes)
	}
	return truncated + "..."
}

// renderTitleBadge renders a centered title badge on a border line.
func renderTitleBadge(title string, width int, borderColor color.Color, isTop bool) string {
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(borderColor)

	var borderLeft, borderChar, borderRight string
	if isTop {
		borderLeft = config.GetWindowBorderTopLeft()
		borderChar = config.GetWindowBorderTop()
		borderRight = config.GetWindowBorderTopRight()
	} else {
		borderLeft = config.GetWindowBorderBottomLeft()
		borderChar = config.GetWindowBorderBottom()
		borderRight = config.GetWindowBorderBottomRight()
	}

	badge := borderStyle.Render(config.GetWindowPillLeft()) +
		nameStyle.Render(" "+title+" ") +
		borderStyle.Render(config.GetWindowPillRight())

	totalPadding := width - lipgloss.Width(badge)
	if totalPadding < 0 {
		return borderStyle.Render(borderLeft + strings.Repeat(borderChar, width) + borderRight)
	}

	leftPadding := totalPadding / 2
	rightPadding := totalPadding - leftPadding

	return borderStyle.Render(borderLeft+strings.Repeat(borderChar, leftPadding)) +
		badge +
		borderStyle.Render(strings.Repeat(borderChar, rightPadding)+borderRight)
}

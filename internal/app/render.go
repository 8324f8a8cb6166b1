package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/nguyenmp/lanterna/internal/config"
	"github.com/nguyenmp/lanterna/internal/geom"
	"github.com/nguyenmp/lanterna/internal/theme"
)

// GetCanvas composes every visible window, the status bar, and the log
// overlay into a canvas covering the whole terminal.
func (m *GUI) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	viewportWidth := m.Width
	viewportHeight := m.usableHeight()

	for i, window := range m.Windows {
		decorated := window.DecoratedSize()
		if decorated.Columns <= 0 || decorated.Rows <= 0 {
			continue
		}

		focused := i == m.FocusedWindow
		renderer := m.Manager.DecorationRenderer(window)

		// Chrome size falls out of decorating an empty content area.
		chrome := renderer.DecoratedSize(window, geom.NewTerminalSize(0, 0))
		body := fitContent(window.Content,
			decorated.Columns-chrome.Columns, decorated.Rows-chrome.Rows)

		frame := renderer.Render(window, body, focused)
		if frame == "" {
			continue
		}

		pos := window.Position()
		clipped, x, y := clipWindowContent(frame, pos.Column, pos.Row, viewportWidth, viewportHeight)
		if clipped == "" {
			continue
		}

		// Focused window paints on top regardless of list order.
		z := config.ZIndexBase + i
		if focused {
			z = config.ZIndexBase + len(m.Windows)
		}
		canvas.Compose(lipgloss.NewLayer(clipped).X(x).Y(y).Z(z).ID(window.ID))
	}

	if !config.HideStatusBar && m.Height > 0 {
		canvas.Compose(lipgloss.NewLayer(m.renderStatusBar()).
			X(0).Y(m.Height - 1).Z(config.ZIndexStatusBar).ID("status-bar"))
	}
	if m.ShowLogs {
		canvas.Compose(lipgloss.NewLayer(m.renderLogOverlay()).
			X(2).Y(1).Z(config.ZIndexLogs).ID("logs"))
	}

	return canvas
}

// View implements tea.Model.
func (m *GUI) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(m.GetCanvas().Render()))
	view.AltScreen = true
	return view
}

// fitContent pads and truncates content to exactly width x height cells.
func fitContent(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "")
		}
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// clipWindowContent trims a rendered window to the viewport, returning the
// visible portion and its on-screen position. Windows may hang off any edge.
func clipWindowContent(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	windowHeight := len(lines)
	windowWidth := 0
	if len(lines) > 0 {
		windowWidth = ansi.StringWidth(lines[0])
	}

	if x+windowWidth <= 0 || x >= viewportWidth || y+windowHeight <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	finalX, finalY := x, y
	if y < 0 {
		lines = lines[-y:]
		finalY = 0
	}
	if maxLines := viewportHeight - finalY; maxLines < len(lines) {
		lines = lines[:maxLines]
	}

	clipLeft := 0
	if x < 0 {
		clipLeft = -x
		finalX = 0
	}
	maxWidth := viewportWidth - finalX

	if clipLeft > 0 || windowWidth > maxWidth {
		for i, line := range lines {
			if clipLeft > 0 {
				line = ansi.TruncateLeft(line, clipLeft, "")
			}
			if ansi.StringWidth(line) > maxWidth {
				line = ansi.Truncate(line, maxWidth, "")
			}
			lines[i] = line + "\x1b[0m"
		}
	}

	return strings.Join(lines, "\n"), finalX, finalY
}

// renderStatusBar renders the single-line bar at the bottom of the screen.
func (m *GUI) renderStatusBar() string {
	barStyle := lipgloss.NewStyle().
		Foreground(theme.StatusBarFg()).
		Background(theme.StatusBarBg())
	accentStyle := lipgloss.NewStyle().
		Foreground(theme.StatusBarAccent()).
		Background(theme.StatusBarBg()).
		Bold(true)

	left := accentStyle.Render(fmt.Sprintf(" %d win ", len(m.Windows)))
	if w := m.FocusedWindowRef(); w != nil {
		left += barStyle.Render(fmt.Sprintf("%s %s %s ",
			w.Title(), w.Position(), w.DecoratedSize()))
	}

	right := barStyle.Render(" " + m.statusHints() + " ")

	padding := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		if lipgloss.Width(left) > m.Width {
			return barStyle.Render(ansi.Truncate(left, m.Width, ""))
		}
		right = ""
		padding = m.Width - lipgloss.Width(left)
	}

	return left + barStyle.Render(strings.Repeat(" ", padding)) + right
}

// statusHints builds the short help text from the active keybindings.
func (m *GUI) statusHints() string {
	hints := []struct {
		action string
		label  string
	}{
		{config.ActionNewWindow, "new"},
		{config.ActionNewCentered, "center"},
		{config.ActionNewFullScreen, "full"},
		{config.ActionNewExpanded, "expand"},
		{config.ActionNewFitted, "fit"},
		{config.ActionCloseWindow, "close"},
		{config.ActionNextWindow, "focus"},
		{config.ActionQuit, "quit"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		if key := m.Keybinds.PrimaryKey(h.action); key != "" {
			parts = append(parts, key+":"+h.label)
		}
	}
	return strings.Join(parts, " ")
}

// renderLogOverlay renders the recent log messages in a bordered box.
func (m *GUI) renderLogOverlay() string {
	width := min(config.LogOverlayWidth, max(m.Width-4, 10))
	maxLines := max(m.Height-6, 4)

	levelStyles := map[string]lipgloss.Style{
		"INFO":  lipgloss.NewStyle().Foreground(theme.LogInfo()),
		"WARN":  lipgloss.NewStyle().Foreground(theme.LogWarn()),
		"ERROR": lipgloss.NewStyle().Foreground(theme.LogError()),
	}

	messages := m.LogMessages
	if len(messages) > maxLines {
		messages = messages[len(messages)-maxLines:]
	}

	var sb strings.Builder
	for i, msg := range messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		line := fmt.Sprintf("%s %-5s %s",
			msg.Time.Format("15:04:05"), msg.Level, msg.Message)
		sb.WriteString(levelStyles[msg.Level].Render(ansi.Truncate(line, width, "…")))
	}
	if len(messages) == 0 {
		sb.WriteString("no log messages")
	}

	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.StatusBarAccent()).
		Width(width).
		Render(sb.String())
}

// Package app implements the window-based text GUI runtime. It owns the
// ordered window list, focus, and the current terminal size, and drives the
// window manager at the three points that matter: window added, window
// removed, and every resize or repaint.
package app

import (
	"fmt"
	"time"

	"github.com/nguyenmp/lanterna/internal/config"
	"github.com/nguyenmp/lanterna/internal/geom"
	"github.com/nguyenmp/lanterna/internal/wm"
)

// Window is a displayable window: layout state from wm.BaseWindow plus the
// text content shown inside the frame.
type Window struct {
	*wm.BaseWindow
	Content string // Text shown in the content area
}

// GUI is the Bubble Tea model hosting the window manager. The window list
// is append-ordered; the cascade heuristic depends on that order.
type GUI struct {
	Windows       []*Window
	FocusedWindow int
	Width         int
	Height        int
	Manager       wm.Manager
	Keybinds      *config.KeybindRegistry
	ShowLogs      bool
	LogMessages   []LogMessage

	windowCounter int
}

// LogMessage is one entry in the in-memory log buffer.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// NewGUI creates a runtime around the given manager. The initial terminal
// size comes from the configured assumed dimensions until the first real
// resize event arrives.
func NewGUI(manager wm.Manager) *GUI {
	if manager == nil {
		manager = wm.NewDefaultManager()
	}
	return &GUI{
		FocusedWindow: -1,
		Width:         config.AssumedTerminalWidth,
		Height:        config.AssumedTerminalHeight,
		Manager:       manager,
		Keybinds:      config.NewKeybindRegistry(nil),
	}
}

// ScreenSize returns the area available to windows: the terminal minus the
// status bar row.
func (m *GUI) ScreenSize() geom.TerminalSize {
	return geom.NewTerminalSize(m.Width, m.usableHeight())
}

func (m *GUI) usableHeight() int {
	if config.HideStatusBar {
		return m.Height
	}
	return max(m.Height-config.StatusBarHeight, 0)
}

// managedWindows returns the window list as the manager sees it.
func (m *GUI) managedWindows() []wm.Window {
	windows := make([]wm.Window, len(m.Windows))
	for i, w := range m.Windows {
		windows[i] = w
	}
	return windows
}

// AddWindow creates a window, lets the manager place it, and appends it to
// the active set with focus. The manager sees the pre-add window list.
func (m *GUI) AddWindow(title string, preferredSize geom.TerminalSize, hints wm.Hint) *Window {
	w := &Window{BaseWindow: wm.NewBaseWindow(title, preferredSize, hints)}

	m.Manager.OnAdded(m, w, m.managedWindows())
	m.Windows = append(m.Windows, w)
	m.FocusedWindow = len(m.Windows) - 1

	m.LogInfo("added window %q at %s size %s (hints: %s)",
		title, w.Position(), w.DecoratedSize(), hints)
	return w
}

// CloseWindow removes the window at index i and notifies the manager with
// the post-removal list.
func (m *GUI) CloseWindow(i int) {
	if i < 0 || i >= len(m.Windows) {
		return
	}
	closed := m.Windows[i]
	m.Windows = append(m.Windows[:i], m.Windows[i+1:]...)

	m.Manager.OnRemoved(m, closed, m.managedWindows())

	if m.FocusedWindow >= len(m.Windows) {
		m.FocusedWindow = len(m.Windows) - 1
	}
	m.LogInfo("closed window %q", closed.Title())
}

// CloseFocusedWindow removes the currently focused window.
func (m *GUI) CloseFocusedWindow() {
	m.CloseWindow(m.FocusedWindow)
}

// FocusedWindowRef returns the focused window, or nil when none exists.
func (m *GUI) FocusedWindowRef() *Window {
	if m.FocusedWindow < 0 || m.FocusedWindow >= len(m.Windows) {
		return nil
	}
	return m.Windows[m.FocusedWindow]
}

// CycleFocus moves focus forward or backward through the window list.
func (m *GUI) CycleFocus(backward bool) {
	if len(m.Windows) == 0 {
		return
	}
	step := 1
	if backward {
		step = len(m.Windows) - 1
	}
	m.FocusedWindow = (m.FocusedWindow + step) % len(m.Windows)
}

// PrepareWindows runs a full preparation pass against the current screen
// size. Invoked on resize and whenever hints or content sizes changed.
func (m *GUI) PrepareWindows() {
	m.Manager.PrepareWindows(m, m.managedWindows(), m.ScreenSize())
}

// Log adds a new log message to the log buffer, keeping only the most
// recent entries.
func (m *GUI) Log(level, format string, args ...any) {
	m.LogMessages = append(m.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}
}

// LogInfo logs an informational message.
func (m *GUI) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *GUI) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *GUI) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

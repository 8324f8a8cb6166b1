package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/nguyenmp/lanterna/internal/config"
	"github.com/nguyenmp/lanterna/internal/geom"
	"github.com/nguyenmp/lanterna/internal/wm"
)

// Init implements tea.Model. The model is event driven; no ticker needed.
func (m *GUI) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *GUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.PrepareWindows()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *GUI) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	action, ok := m.Keybinds.ActionFor(msg.String())
	if !ok {
		return m, nil
	}

	switch action {
	case config.ActionQuit:
		return m, tea.Quit

	case config.ActionNewWindow:
		m.spawnWindow("Window", 0)

	case config.ActionNewCentered:
		m.spawnWindow("Centered", wm.HintCentered)

	case config.ActionNewFullScreen:
		m.spawnWindow("Full Screen", wm.HintFullScreen)

	case config.ActionNewExpanded:
		m.spawnWindow("Expanded", wm.HintExpanded)

	case config.ActionNewFitted:
		// Oversized on purpose so shrink-to-fit has something to do.
		m.windowCounter++
		w := m.AddWindow(
			fmt.Sprintf("Fitted %d", m.windowCounter),
			geom.NewTerminalSize(m.Width+10, m.Height+5),
			wm.HintFitTerminalWindow)
		w.Content = windowInfo(w)

	case config.ActionNewBorderless:
		m.spawnWindow("Borderless", wm.HintNoDecorations|wm.HintCentered)

	case config.ActionNewPinned:
		m.spawnPinnedWindow()

	case config.ActionCloseWindow:
		m.CloseFocusedWindow()

	case config.ActionNextWindow:
		m.CycleFocus(false)

	case config.ActionPrevWindow:
		m.CycleFocus(true)

	case config.ActionToggleLogs:
		m.ShowLogs = !m.ShowLogs
	}

	return m, nil
}

// spawnWindow adds a default-sized demo window with the given hints.
func (m *GUI) spawnWindow(kind string, hints wm.Hint) {
	m.windowCounter++
	w := m.AddWindow(
		fmt.Sprintf("%s %d", kind, m.windowCounter),
		geom.NewTerminalSize(config.DefaultWindowWidth, config.DefaultWindowHeight),
		hints)
	w.Content = windowInfo(w)
}

// spawnPinnedWindow adds a fixed-position window. The position must be set
// before the manager sees the window; fixed positions are never touched.
func (m *GUI) spawnPinnedWindow() {
	m.windowCounter++
	w := &Window{BaseWindow: wm.NewBaseWindow(
		fmt.Sprintf("Pinned %d", m.windowCounter),
		geom.NewTerminalSize(config.DefaultWindowWidth, config.DefaultWindowHeight),
		wm.HintFixedPosition)}
	w.SetPosition(geom.TopLeftCorner)

	m.Manager.OnAdded(m, w, m.managedWindows())
	m.Windows = append(m.Windows, w)
	m.FocusedWindow = len(m.Windows) - 1
	w.Content = windowInfo(w)

	m.LogInfo("added window %q at %s size %s (hints: %s)",
		w.Title(), w.Position(), w.DecoratedSize(), w.Hints())
}

// windowInfo builds the demo content summarizing a window's layout.
func windowInfo(w *Window) string {
	return fmt.Sprintf("pos %s\nsize %s\nhints %s",
		w.Position(), w.DecoratedSize(), w.Hints())
}

package wm

import (
	"github.com/nguyenmp/lanterna/internal/config"
	"github.com/nguyenmp/lanterna/internal/geom"
)

// TextGUI is the handle the runtime passes into manager callbacks. The
// default manager never calls back into it; it exists so custom managers
// can reach the runtime that owns the window list.
type TextGUI interface {
	// ScreenSize returns the runtime's current terminal size.
	ScreenSize() geom.TerminalSize
}

// Manager decides where windows go and how big they are. The runtime owns
// the window list and the terminal size; it invokes the manager on add, on
// remove, and before every paint or resize cycle. Managers are not safe for
// concurrent use; the runtime serializes all calls.
//
// List convention: OnAdded receives the windows present before the new one
// joined (the new window is not in allWindows). OnRemoved and PrepareWindows
// receive the complete current list.
type Manager interface {
	// IsInvalid reports whether the manager's own state is stale and the
	// runtime must force a full preparation pass before the next paint.
	IsInvalid() bool

	// DecorationRenderer returns the renderer that applies to the given
	// window. Pure, callable any number of times.
	DecorationRenderer(window Window) DecorationRenderer

	// OnAdded is called exactly once when a window joins the active set.
	// It must leave the window with a position and decorated size.
	OnAdded(gui TextGUI, window Window, allWindows []Window)

	// OnRemoved is called when a window leaves the active set.
	OnRemoved(gui TextGUI, window Window, allWindows []Window)

	// PrepareWindows recomputes position and decorated size for every
	// window in the list against the given terminal size.
	PrepareWindows(gui TextGUI, allWindows []Window, screenSize geom.TerminalSize)
}

// DefaultManager is the standard cascading window manager. New windows
// cascade diagonally from the previous one, and every preparation pass
// reconciles hint-driven sizing: full-screen, expanded, shrink-to-fit,
// centering. Its only state is the most recent terminal size it has seen.
type DefaultManager struct {
	renderer            DecorationRenderer
	lastKnownScreenSize geom.TerminalSize
}

// DefaultManagerOption configures a DefaultManager.
type DefaultManagerOption func(*DefaultManager)

// WithDecorationRenderer replaces the standard bordered renderer. Windows
// with HintNoDecorations bypass it regardless.
func WithDecorationRenderer(renderer DecorationRenderer) DefaultManagerOption {
	return func(m *DefaultManager) {
		if renderer != nil {
			m.renderer = renderer
		}
	}
}

// WithInitialScreenSize sets the terminal size assumed before the first
// PrepareWindows call. Non-positive dimensions keep the 80x24 default.
func WithInitialScreenSize(size geom.TerminalSize) DefaultManagerOption {
	return func(m *DefaultManager) {
		if size.Columns > 0 && size.Rows > 0 {
			m.lastKnownScreenSize = size
		}
	}
}

// NewDefaultManager creates a manager with the standard decoration renderer
// and an assumed terminal size of 80x24.
func NewDefaultManager(opts ...DefaultManagerOption) *DefaultManager {
	m := &DefaultManager{
		renderer: NewStandardDecorationRenderer(),
		lastKnownScreenSize: geom.NewTerminalSize(
			config.DefaultTerminalWidth, config.DefaultTerminalHeight),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsInvalid always reports false; the default manager defers no work.
func (m *DefaultManager) IsInvalid() bool {
	return false
}

// LastKnownScreenSize returns the terminal size from the most recent
// PrepareWindows call, or the initial assumed size before the first one.
func (m *DefaultManager) LastKnownScreenSize() geom.TerminalSize {
	return m.lastKnownScreenSize
}

// DecorationRenderer returns the no-op renderer for windows that opted out
// of decorations, and the configured renderer for everything else.
func (m *DefaultManager) DecorationRenderer(window Window) DecorationRenderer {
	if window.HasHint(HintNoDecorations) {
		return EmptyDecorationRenderer{}
	}
	return m.renderer
}

// OnAdded places a brand-new window. Position precedence: a fixed position
// stays untouched, the first window goes to (1,1), centered windows center
// on the cached terminal size, and everything else cascades from the last
// window in the list, falling back to (1,1) when the cascade would push the
// window out of bounds. The general preparation pass then runs on the new
// window so hint-driven sizing applies from the start.
func (m *DefaultManager) OnAdded(gui TextGUI, window Window, allWindows []Window) {
	decoratedSize := m.DecorationRenderer(window).DecoratedSize(window, window.PreferredSize())
	window.SetDecoratedSize(decoratedSize)

	switch {
	case window.HasHint(HintFixedPosition):
		// Caller placed it; leave the position alone.
	case len(allWindows) == 0:
		window.SetPosition(geom.Offset1x1)
	case window.HasHint(HintCentered):
		window.SetPosition(geom.NewTerminalPosition(
			(m.lastKnownScreenSize.Columns-decoratedSize.Columns)/2,
			(m.lastKnownScreenSize.Rows-decoratedSize.Rows)/2))
	default:
		next := allWindows[len(allWindows)-1].Position().
			WithRelative(config.CascadeColumnOffset, config.CascadeRowOffset)
		if next.Column+decoratedSize.Columns > m.lastKnownScreenSize.Columns ||
			next.Row+decoratedSize.Rows > m.lastKnownScreenSize.Rows {
			next = geom.Offset1x1
		}
		window.SetPosition(next)
	}

	m.prepareWindow(m.lastKnownScreenSize, window)
}

// OnRemoved does nothing; no bookkeeping depends on removal.
func (m *DefaultManager) OnRemoved(_ TextGUI, _ Window, _ []Window) {
}

// PrepareWindows reconciles every window against the given terminal size
// and caches that size for subsequent OnAdded calls.
func (m *DefaultManager) PrepareWindows(_ TextGUI, allWindows []Window, screenSize geom.TerminalSize) {
	for _, window := range allWindows {
		m.prepareWindow(screenSize, window)
	}
	m.lastKnownScreenSize = screenSize
}

// prepareWindow recomputes one window's position and decorated size. Hint
// precedence: full-screen wins, then expanded, then the shrink-to-fit
// procedure for fit-terminal-window or centered windows. Windows with none
// of those hints keep whatever geometry they have, even off-screen.
func (m *DefaultManager) prepareWindow(screenSize geom.TerminalSize, window Window) {
	var contentAreaSize geom.TerminalSize
	if window.HasHint(HintFixedSize) {
		contentAreaSize = window.Size()
	} else {
		contentAreaSize = window.PreferredSize()
	}
	size := m.DecorationRenderer(window).DecoratedSize(window, contentAreaSize)
	position := window.Position()

	switch {
	case window.HasHint(HintFullScreen):
		position = geom.TopLeftCorner
		size = screenSize

	case window.HasHint(HintExpanded):
		position = geom.Offset1x1
		size = screenSize.WithRelative(
			-min(config.ExpandedMarginColumns, screenSize.Columns),
			-min(config.ExpandedMarginRows, screenSize.Rows))
		if size != window.DecoratedSize() {
			window.Invalidate()
		}

	case window.HasHint(HintFitTerminalWindow) || window.HasHint(HintCentered):
		// Slide toward the top-left as long as that alone can bring the
		// window back inside the terminal.
		for position.Row > 0 && position.Row+size.Rows > screenSize.Rows {
			position.Row--
		}
		for position.Column > 0 && position.Column+size.Columns > screenSize.Columns {
			position.Column--
		}
		// Whatever still overflows gets clipped.
		if position.Row+size.Rows > screenSize.Rows {
			size.Rows = screenSize.Rows - position.Row
		}
		if position.Column+size.Columns > screenSize.Columns {
			size.Columns = screenSize.Columns - position.Column
		}
		// Re-center with the possibly shrunk size so the visible
		// rectangle stays balanced.
		if window.HasHint(HintCentered) {
			position.Column = (screenSize.Columns - size.Columns) / 2
			position.Row = (screenSize.Rows - size.Rows) / 2
		}
	}

	window.SetPosition(position)
	window.SetDecoratedSize(size)
}

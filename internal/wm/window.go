package wm

import (
	"github.com/google/uuid"

	"github.com/nguyenmp/lanterna/internal/geom"
)

// Window is the narrow view the manager has of a window. The surrounding
// runtime owns window identity and lifecycle; the manager only reads hints
// and sizes and writes position and decorated size. Position and decorated
// size are valid only immediately after a preparation pass.
type Window interface {
	// Title returns the window's display title.
	Title() string

	// Hints returns the window's placement hints. The set is fixed at
	// construction time.
	Hints() Hint

	// HasHint reports whether the window carries the given hint.
	HasHint(hint Hint) bool

	// PreferredSize returns the content size the window would like to
	// have. It may change between calls; the manager re-queries it on
	// every preparation pass.
	PreferredSize() geom.TerminalSize

	// Size returns the window's current content size. Used instead of
	// PreferredSize when HintFixedSize is set.
	Size() geom.TerminalSize

	// Position returns the window's current top-left screen position.
	Position() geom.TerminalPosition

	// SetPosition moves the window. Only the manager should call this.
	SetPosition(position geom.TerminalPosition)

	// DecoratedSize returns the window's size including border chrome.
	DecoratedSize() geom.TerminalSize

	// SetDecoratedSize resizes the window's decorated rectangle. Only the
	// manager should call this.
	SetDecoratedSize(size geom.TerminalSize)

	// Invalidate marks the window's previously rendered layout as stale.
	Invalidate()
}

// BaseWindow is a ready-made Window implementation. The runtime embeds or
// wraps it to add content; the manager only ever sees the Window interface.
type BaseWindow struct {
	ID            string // Unique window identifier
	title         string
	hints         Hint
	preferredSize geom.TerminalSize
	size          geom.TerminalSize
	position      geom.TerminalPosition
	decoratedSize geom.TerminalSize
	invalidated   bool
}

// NewBaseWindow creates a window with the given title, preferred content
// size, and hints. The content size starts equal to the preferred size.
func NewBaseWindow(title string, preferredSize geom.TerminalSize, hints Hint) *BaseWindow {
	return &BaseWindow{
		ID:            uuid.New().String(),
		title:         title,
		hints:         hints,
		preferredSize: preferredSize,
		size:          preferredSize,
	}
}

// Title returns the window's display title.
func (w *BaseWindow) Title() string { return w.title }

// SetTitle changes the window's display title.
func (w *BaseWindow) SetTitle(title string) { w.title = title }

// Hints returns the window's placement hints.
func (w *BaseWindow) Hints() Hint { return w.hints }

// HasHint reports whether the window carries the given hint.
func (w *BaseWindow) HasHint(hint Hint) bool { return w.hints.Has(hint) }

// PreferredSize returns the preferred content size.
func (w *BaseWindow) PreferredSize() geom.TerminalSize { return w.preferredSize }

// SetPreferredSize changes the preferred content size. The new value takes
// effect on the next preparation pass.
func (w *BaseWindow) SetPreferredSize(size geom.TerminalSize) { w.preferredSize = size }

// Size returns the current content size.
func (w *BaseWindow) Size() geom.TerminalSize { return w.size }

// SetSize changes the current content size. Windows with HintFixedSize are
// laid out from this value.
func (w *BaseWindow) SetSize(size geom.TerminalSize) { w.size = size }

// Position returns the current top-left screen position.
func (w *BaseWindow) Position() geom.TerminalPosition { return w.position }

// SetPosition moves the window.
func (w *BaseWindow) SetPosition(position geom.TerminalPosition) { w.position = position }

// DecoratedSize returns the size including border chrome.
func (w *BaseWindow) DecoratedSize() geom.TerminalSize { return w.decoratedSize }

// SetDecoratedSize resizes the decorated rectangle.
func (w *BaseWindow) SetDecoratedSize(size geom.TerminalSize) { w.decoratedSize = size }

// Invalidate marks the window as needing a repaint.
func (w *BaseWindow) Invalidate() { w.invalidated = true }

// Invalidated reports whether the window has been invalidated since the
// last TakeInvalidated call.
func (w *BaseWindow) Invalidated() bool { return w.invalidated }

// TakeInvalidated reads and clears the invalidated flag. The runtime calls
// this once per frame to decide whether a repaint is needed.
func (w *BaseWindow) TakeInvalidated() bool {
	v := w.invalidated
	w.invalidated = false
	return v
}

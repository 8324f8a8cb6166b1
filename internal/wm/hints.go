// Package wm implements window placement and sizing for character-cell UIs.
// A Manager decides where each window goes and how big its decorated
// rectangle is; it never draws anything and never owns the window list.
package wm

import "strings"

// Hint is a capability flag a window carries to request specific placement
// or sizing behavior. Hints combine as a bit set; the manager defines the
// precedence when combinations conflict.
type Hint uint

const (
	// HintNoDecorations asks for no border or title chrome; the manager
	// selects the no-op decoration renderer for such windows.
	HintNoDecorations Hint = 1 << iota

	// HintFixedPosition tells the manager to never move the window. The
	// caller is responsible for having set a position before adding it.
	HintFixedPosition

	// HintFixedSize makes the manager size the window from its current
	// content size instead of re-querying the preferred size.
	HintFixedSize

	// HintCentered centers the window on the screen, re-centering after
	// any shrink-to-fit adjustment.
	HintCentered

	// HintFullScreen pins the window at the top-left corner covering the
	// whole terminal.
	HintFullScreen

	// HintExpanded sizes the window to the terminal minus a small margin,
	// positioned at (1,1).
	HintExpanded

	// HintFitTerminalWindow keeps the window inside terminal bounds by
	// sliding it toward the top-left and clipping whatever still overflows.
	HintFitTerminalWindow
)

var hintNames = map[Hint]string{
	HintNoDecorations:     "no-decorations",
	HintFixedPosition:     "fixed-position",
	HintFixedSize:         "fixed-size",
	HintCentered:          "centered",
	HintFullScreen:        "full-screen",
	HintExpanded:          "expanded",
	HintFitTerminalWindow: "fit-terminal-window",
}

// Has reports whether every flag in hint is set on h.
func (h Hint) Has(hint Hint) bool {
	return h&hint == hint
}

func (h Hint) String() string {
	if h == 0 {
		return "none"
	}
	var parts []string
	for flag := Hint(1); flag <= HintFitTerminalWindow; flag <<= 1 {
		if h.Has(flag) {
			parts = append(parts, hintNames[flag])
		}
	}
	return strings.Join(parts, "+")
}

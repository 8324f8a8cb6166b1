package wm

import (
	"testing"

	"github.com/nguyenmp/lanterna/internal/geom"
)

func TestHintHas(t *testing.T) {
	h := HintCentered | HintFixedSize

	if !h.Has(HintCentered) {
		t.Error("Has(HintCentered) = false, want true")
	}
	if !h.Has(HintCentered | HintFixedSize) {
		t.Error("Has(combined) = false, want true")
	}
	if h.Has(HintFullScreen) {
		t.Error("Has(HintFullScreen) = true, want false")
	}
	if Hint(0).Has(HintCentered) {
		t.Error("zero set reports HintCentered")
	}
}

func TestHintString(t *testing.T) {
	tests := []struct {
		hint Hint
		want string
	}{
		{hint: 0, want: "none"},
		{hint: HintFullScreen, want: "full-screen"},
		{hint: HintCentered | HintFitTerminalWindow, want: "centered+fit-terminal-window"},
	}

	for _, tt := range tests {
		if got := tt.hint.String(); got != tt.want {
			t.Errorf("Hint(%b).String() = %q, want %q", tt.hint, got, tt.want)
		}
	}
}

func TestBaseWindowDefaults(t *testing.T) {
	w := NewBaseWindow("shell", geom.NewTerminalSize(10, 5), HintCentered)

	if w.ID == "" {
		t.Error("ID is empty")
	}
	if w.Title() != "shell" {
		t.Errorf("Title() = %q, want %q", w.Title(), "shell")
	}
	if !w.HasHint(HintCentered) || w.HasHint(HintExpanded) {
		t.Errorf("Hints() = %v, want centered only", w.Hints())
	}
	// Content size starts equal to the preferred size.
	if w.Size() != w.PreferredSize() {
		t.Errorf("Size() = %v, want preferred %v", w.Size(), w.PreferredSize())
	}
}

func TestBaseWindowInvalidation(t *testing.T) {
	w := NewBaseWindow("w", geom.NewTerminalSize(10, 5), 0)

	if w.Invalidated() {
		t.Error("new window already invalidated")
	}
	w.Invalidate()
	if !w.Invalidated() {
		t.Error("Invalidated() = false after Invalidate")
	}
	if !w.TakeInvalidated() {
		t.Error("TakeInvalidated() = false, want true")
	}
	if w.TakeInvalidated() {
		t.Error("TakeInvalidated() did not clear the flag")
	}
}

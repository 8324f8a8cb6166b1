package wm

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/nguyenmp/lanterna/internal/geom"
)

func TestEmptyDecorationRenderer(t *testing.T) {
	r := EmptyDecorationRenderer{}
	w := NewBaseWindow("w", geom.NewTerminalSize(10, 5), HintNoDecorations)

	if got := r.DecoratedSize(w, geom.NewTerminalSize(10, 5)); got != geom.NewTerminalSize(10, 5) {
		t.Errorf("DecoratedSize() = %v, want content size unchanged", got)
	}
	if got := r.Render(w, "hello", false); got != "hello" {
		t.Errorf("Render() = %q, want content unchanged", got)
	}
}

func TestStandardDecoratedSize(t *testing.T) {
	r := NewStandardDecorationRenderer()
	w := NewBaseWindow("w", geom.NewTerminalSize(10, 5), 0)

	tests := []struct {
		name    string
		content geom.TerminalSize
		want    geom.TerminalSize
	}{
		{name: "normal", content: geom.NewTerminalSize(10, 5), want: geom.NewTerminalSize(12, 7)},
		{name: "zero content", content: geom.NewTerminalSize(0, 0), want: geom.NewTerminalSize(2, 2)},
		{name: "wide", content: geom.NewTerminalSize(78, 22), want: geom.NewTerminalSize(80, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DecoratedSize(w, tt.content); got != tt.want {
				t.Errorf("DecoratedSize(%v) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestStandardRenderShape(t *testing.T) {
	r := NewStandardDecorationRenderer()
	w := NewBaseWindow("demo", geom.NewTerminalSize(10, 3), 0)
	w.SetDecoratedSize(geom.NewTerminalSize(12, 5))

	content := strings.Repeat(strings.Repeat(" ", 10)+"\n", 2) + strings.Repeat(" ", 10)
	out := r.Render(w, content, false)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if got := lipgloss.Width(line); got != 12 {
			t.Errorf("line %d width = %d, want 12", i, got)
		}
	}
	if !strings.Contains(out, "demo") {
		t.Error("rendered frame does not contain the window title")
	}
}

func TestStandardRenderDegenerate(t *testing.T) {
	r := NewStandardDecorationRenderer()
	w := NewBaseWindow("tiny", geom.NewTerminalSize(0, 0), 0)
	w.SetDecoratedSize(geom.NewTerminalSize(2, 2))

	if got := r.Render(w, "", false); got != "" {
		t.Errorf("Render() = %q for degenerate window, want empty", got)
	}

	w.SetDecoratedSize(geom.NewTerminalSize(0, 0))
	if got := r.Render(w, "", true); got != "" {
		t.Errorf("Render() = %q for zero-size window, want empty", got)
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		maxWidth int
		want     string
	}{
		{name: "fits", title: "editor", maxWidth: 20, want: "editor"},
		{name: "empty", title: "", maxWidth: 20, want: ""},
		{name: "no room", title: "editor", maxWidth: 5, want: ""},
		{name: "truncated", title: "a very long window title here", maxWidth: 16, want: "a very lo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayTitle(tt.title, tt.maxWidth); got != tt.want {
				t.Errorf("displayTitle(%q, %d) = %q, want %q", tt.title, tt.maxWidth, got, tt.want)
			}
		})
	}
}

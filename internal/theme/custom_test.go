package theme

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomThemeFile(t *testing.T) {
	dir := t.TempDir()

	path := writeTheme(t, dir, "midnight.json", `{
		"id": "midnight",
		"display_name": "Midnight",
		"dark": true,
		"fg": "#d4d4d4",
		"bg": "#1e1e2e",
		"red": "#f38ba8",
		"bright_cyan": "#94e2d5"
	}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile() error = %v", err)
	}
	if theme.ID != "midnight" {
		t.Errorf("ID = %q, want %q", theme.ID, "midnight")
	}
	if theme.DisplayName != "Midnight" {
		t.Errorf("DisplayName = %q, want %q", theme.DisplayName, "Midnight")
	}

	// Omitted colors get filled: cursor from fg, brights from normals.
	if theme.Cursor == nil || theme.Black == nil || theme.BrightRed == nil {
		t.Error("fillDefaults left nil colors")
	}
	if theme.Cursor.R != theme.Fg.R || theme.Cursor.G != theme.Fg.G || theme.Cursor.B != theme.Fg.B {
		t.Error("Cursor should default to Fg")
	}
	if theme.BrightRed.R != theme.Red.R {
		t.Error("BrightRed should default to Red")
	}
}

func TestLoadCustomThemeFileIDFromFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "My-Cool-Theme.json", `{"fg": "#ffffff", "bg": "#000000"}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile() error = %v", err)
	}
	if theme.ID != "my-cool-theme" {
		t.Errorf("ID = %q, want %q derived from filename", theme.ID, "my-cool-theme")
	}
	if theme.DisplayName != "my-cool-theme" {
		t.Errorf("DisplayName = %q, want ID fallback", theme.DisplayName)
	}
}

func TestLoadCustomThemeFileInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "bad.json", "not valid json{{{")

	if _, err := LoadCustomThemeFile(path); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestLoadCustomThemesSkipsNonThemes(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "readme.txt", "not a theme")
	writeTheme(t, dir, "broken.json", "{{{")
	writeTheme(t, dir, "good.json", `{"id": "good", "fg": "#ffffff", "bg": "#000000"}`)

	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes() error = %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "good" {
		t.Errorf("loaded = %v, want [good]", loaded)
	}
}

func TestLoadCustomThemesRegisters(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "registered-theme.json", `{"id": "registered-theme", "fg": "#ffffff", "bg": "#000000"}`)

	tint.NewDefaultRegistry()
	if _, err := LoadCustomThemes(dir); err != nil {
		t.Fatalf("LoadCustomThemes() error = %v", err)
	}
	if !slices.Contains(tint.TintIDs(), "registered-theme") {
		t.Error("custom theme not found in registry")
	}
}

func TestFillDefaultsEmptyTheme(t *testing.T) {
	theme := &tint.Tint{}
	fillDefaults(theme)

	for name, c := range map[string]*tint.Color{
		"Fg": theme.Fg, "Bg": theme.Bg, "Cursor": theme.Cursor,
		"Black": theme.Black, "White": theme.White,
		"BrightBlack": theme.BrightBlack, "BrightWhite": theme.BrightWhite,
	} {
		if c == nil {
			t.Errorf("%s is nil after fillDefaults", name)
		}
	}
}

func TestCopyColor(t *testing.T) {
	original := &tint.Color{R: 255, G: 128, B: 0, A: 255}
	copied := copyColor(original)

	if copied == original {
		t.Error("copyColor returned the same pointer")
	}
	copied.R = 0
	if original.R != 255 {
		t.Error("modifying the copy changed the original")
	}
	if copyColor(nil) != nil {
		t.Error("copyColor(nil) != nil")
	}
}

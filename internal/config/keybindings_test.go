package config

import "testing"

func TestKeybindRegistryDefaults(t *testing.T) {
	r := NewKeybindRegistry(nil)

	tests := []struct {
		key    string
		action string
	}{
		{"n", ActionNewWindow},
		{"c", ActionNewCentered},
		{"f", ActionNewFullScreen},
		{"e", ActionNewExpanded},
		{"t", ActionNewFitted},
		{"b", ActionNewBorderless},
		{"p", ActionNewPinned},
		{"x", ActionCloseWindow},
		{"w", ActionCloseWindow},
		{"tab", ActionNextWindow},
		{"shift+tab", ActionPrevWindow},
		{"ctrl+l", ActionToggleLogs},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
	}

	for _, tt := range tests {
		action, ok := r.ActionFor(tt.key)
		if !ok {
			t.Errorf("ActionFor(%q) not bound", tt.key)
			continue
		}
		if action != tt.action {
			t.Errorf("ActionFor(%q) = %q, want %q", tt.key, action, tt.action)
		}
	}

	if _, ok := r.ActionFor("z"); ok {
		t.Error("ActionFor(\"z\") bound, want unbound")
	}
}

func TestKeybindRegistryOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.WindowManagement = map[string][]string{
		ActionNewWindow:   {"a"},
		ActionCloseWindow: {"d"},
		"launch_rocket":   {"r"}, // unknown, ignored
	}

	r := NewKeybindRegistry(cfg)

	if action, _ := r.ActionFor("a"); action != ActionNewWindow {
		t.Errorf("ActionFor(\"a\") = %q, want %q", action, ActionNewWindow)
	}
	if action, _ := r.ActionFor("d"); action != ActionCloseWindow {
		t.Errorf("ActionFor(\"d\") = %q, want %q", action, ActionCloseWindow)
	}

	// Replaced keys no longer resolve.
	if _, ok := r.ActionFor("n"); ok {
		t.Error("ActionFor(\"n\") still bound after override")
	}
	if _, ok := r.ActionFor("r"); ok {
		t.Error("unknown action bound a key")
	}

	// Untouched actions keep their defaults.
	if action, _ := r.ActionFor("tab"); action != ActionNextWindow {
		t.Errorf("ActionFor(\"tab\") = %q, want %q", action, ActionNextWindow)
	}
}

func TestKeysForDisplay(t *testing.T) {
	r := NewKeybindRegistry(nil)

	if got := r.KeysForDisplay(ActionCloseWindow); got != "x/w" {
		t.Errorf("KeysForDisplay(close_window) = %q, want %q", got, "x/w")
	}
	if got := r.KeysForDisplay("no_such_action"); got != "" {
		t.Errorf("KeysForDisplay(no_such_action) = %q, want empty", got)
	}
	if got := r.PrimaryKey(ActionQuit); got != "q" {
		t.Errorf("PrimaryKey(quit) = %q, want %q", got, "q")
	}
	if got := r.PrimaryKey("no_such_action"); got != "" {
		t.Errorf("PrimaryKey(no_such_action) = %q, want empty", got)
	}
}

package config

import (
	"log"
	"strings"
)

// Action names used in the keybindings section of the user config.
const (
	ActionNewWindow     = "new_window"
	ActionNewCentered   = "new_centered"
	ActionNewFullScreen = "new_fullscreen"
	ActionNewExpanded   = "new_expanded"
	ActionNewFitted     = "new_fitted"
	ActionNewBorderless = "new_borderless"
	ActionNewPinned     = "new_pinned"
	ActionCloseWindow   = "close_window"
	ActionNextWindow    = "next_window"
	ActionPrevWindow    = "prev_window"
	ActionToggleLogs    = "toggle_logs"
	ActionQuit          = "quit"
)

// KeybindingsConfig holds user keybinding overrides, keyed by action name.
// Keys use Bubble Tea key strings ("n", "tab", "ctrl+l", "shift+tab").
type KeybindingsConfig struct {
	WindowManagement map[string][]string `toml:"window_management"`
	System           map[string][]string `toml:"system"`
}

// DefaultKeybindings returns the built-in keybindings.
func DefaultKeybindings() KeybindingsConfig {
	return KeybindingsConfig{
		WindowManagement: map[string][]string{
			ActionNewWindow:     {"n"},
			ActionNewCentered:   {"c"},
			ActionNewFullScreen: {"f"},
			ActionNewExpanded:   {"e"},
			ActionNewFitted:     {"t"},
			ActionNewBorderless: {"b"},
			ActionNewPinned:     {"p"},
			ActionCloseWindow:   {"x", "w"},
			ActionNextWindow:    {"tab"},
			ActionPrevWindow:    {"shift+tab"},
		},
		System: map[string][]string{
			ActionToggleLogs: {"ctrl+l"},
			ActionQuit:       {"q", "ctrl+c"},
		},
	}
}

// KeybindRegistry resolves pressed keys to action names. User overrides
// replace the default keys for an action; unknown action names in the
// config are ignored with a warning.
type KeybindRegistry struct {
	keyToAction map[string]string
	actionKeys  map[string][]string
}

// NewKeybindRegistry builds a registry from the user config. A nil config
// yields the default bindings.
func NewKeybindRegistry(userConfig *UserConfig) *KeybindRegistry {
	defaults := DefaultKeybindings()
	merged := map[string][]string{}
	for action, keys := range defaults.WindowManagement {
		merged[action] = keys
	}
	for action, keys := range defaults.System {
		merged[action] = keys
	}

	if userConfig != nil {
		applyOverride(merged, userConfig.Keybindings.WindowManagement)
		applyOverride(merged, userConfig.Keybindings.System)
	}

	r := &KeybindRegistry{
		keyToAction: map[string]string{},
		actionKeys:  merged,
	}
	for action, keys := range merged {
		for _, key := range keys {
			if other, taken := r.keyToAction[key]; taken && other != action {
				log.Printf("Warning: key %q bound to both %q and %q, keeping %q",
					key, other, action, action)
			}
			r.keyToAction[key] = action
		}
	}
	return r
}

func applyOverride(merged map[string][]string, overrides map[string][]string) {
	for action, keys := range overrides {
		if _, known := merged[action]; !known {
			log.Printf("Warning: unknown keybinding action %q in config", action)
			continue
		}
		if len(keys) > 0 {
			merged[action] = keys
		}
	}
}

// ActionFor returns the action bound to the given key, if any.
func (r *KeybindRegistry) ActionFor(key string) (string, bool) {
	action, ok := r.keyToAction[key]
	return action, ok
}

// KeysForDisplay returns the keys bound to an action joined with "/",
// or an empty string when the action has no keys.
func (r *KeybindRegistry) KeysForDisplay(action string) string {
	return strings.Join(r.actionKeys[action], "/")
}

// PrimaryKey returns the first key bound to an action, for short help text.
func (r *KeybindRegistry) PrimaryKey(action string) string {
	keys := r.actionKeys[action]
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

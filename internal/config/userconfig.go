package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Terminal    TerminalConfig    `toml:"terminal"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle         string `toml:"border_style"`          // Border style: rounded, normal, thick, double, hidden, block, ascii
	WindowTitlePosition string `toml:"window_title_position"` // Window title position: top, bottom, hidden (default: top)
	HideStatusBar       bool   `toml:"hide_status_bar"`       // Hide the status bar at the bottom (default: false)
	Theme               string `toml:"theme"`                 // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// TerminalConfig holds terminal geometry settings
type TerminalConfig struct {
	AssumedColumns int `toml:"assumed_columns"` // Terminal width assumed before the first resize event (default: 80)
	AssumedRows    int `toml:"assumed_rows"`    // Terminal height assumed before the first resize event (default: 24)
}

var validBorderStyles = []string{
	"rounded", "normal", "thick", "double", "hidden", "block", "ascii",
}

var validTitlePositions = []string{"top", "bottom", "hidden"}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:         "rounded",
			WindowTitlePosition: "top",
			HideStatusBar:       false,
			Theme:               "",
		},
		Terminal: TerminalConfig{
			AssumedColumns: DefaultTerminalWidth,
			AssumedRows:    DefaultTerminalHeight,
		},
		Keybindings: DefaultKeybindings(),
	}
}

// LoadUserConfig loads the user configuration from the XDG config directory,
// creating a default config file on first run.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile("lanterna/config.toml")
	if err != nil {
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	fillMissing(&cfg, DefaultConfig())
	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("lanterna/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Lanterna Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: Window border style\n")
	sb.WriteString("#   Options: rounded, normal, thick, double, hidden, block, ascii\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# window_title_position: Where window titles are displayed\n")
	sb.WriteString("#   Options: top, bottom, hidden\n")
	sb.WriteString("#   Default: top\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/lanterna/themes/*.json\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# KEYBINDINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# Keys use Bubble Tea key names: \"n\", \"tab\", \"shift+tab\", \"ctrl+l\".\n")
	sb.WriteString("# Listing an action replaces its default keys entirely.\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# TERMINAL SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# assumed_columns / assumed_rows: Terminal size assumed before the first\n")
	sb.WriteString("#   resize event arrives. Windows added before the terminal reports its\n")
	sb.WriteString("#   real size are placed against these dimensions.\n")
	sb.WriteString("#   Default: 80 x 24\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}
	return cfg, nil
}

// fillMissing replaces empty or invalid settings with defaults. Unknown
// values get a warning rather than a hard failure.
func fillMissing(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	} else if !slices.Contains(validBorderStyles, cfg.Appearance.BorderStyle) {
		log.Printf("Warning: unknown border_style %q, using %q",
			cfg.Appearance.BorderStyle, defaultCfg.Appearance.BorderStyle)
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}

	if cfg.Appearance.WindowTitlePosition == "" {
		cfg.Appearance.WindowTitlePosition = defaultCfg.Appearance.WindowTitlePosition
	} else if !slices.Contains(validTitlePositions, cfg.Appearance.WindowTitlePosition) {
		log.Printf("Warning: unknown window_title_position %q, using %q",
			cfg.Appearance.WindowTitlePosition, defaultCfg.Appearance.WindowTitlePosition)
		cfg.Appearance.WindowTitlePosition = defaultCfg.Appearance.WindowTitlePosition
	}

	if cfg.Terminal.AssumedColumns <= 0 {
		cfg.Terminal.AssumedColumns = defaultCfg.Terminal.AssumedColumns
	}
	if cfg.Terminal.AssumedRows <= 0 {
		cfg.Terminal.AssumedRows = defaultCfg.Terminal.AssumedRows
	}
}

// ResetConfig overwrites the user's config file with the defaults and
// returns the path that was written.
func ResetConfig() (string, error) {
	if _, err := createDefaultConfig(); err != nil {
		return "", err
	}
	return GetConfigPath()
}

// GetConfigPath returns the path to the config file, or where it would be
// created if it doesn't exist yet.
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("lanterna/config.toml")
	if err != nil {
		return xdg.ConfigFile("lanterna/config.toml")
	}
	return path, nil
}

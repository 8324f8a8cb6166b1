// Package main implements the lanterna demo application, a character-cell
// window manager with cascade placement, centering and screen-tracking
// windows driven by placement hints.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"

	"github.com/nguyenmp/lanterna/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode           bool
	cpuProfile          string
	asciiOnly           bool
	themeName           string
	listThemes          bool
	previewTheme        string
	borderStyle         string
	windowTitlePosition string
	noStatusBar         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lanterna",
		Short: "Character-cell window manager",
		Long: `lanterna - a character-cell window manager

A terminal UI that places and sizes windows through a hint-driven
manager: new windows cascade across the screen, and hints such as
Centered, FullScreen, Expanded and FitTerminalWindow control how
windows track the terminal as it resizes.`,
		Example: `  # Run the demo
  lanterna

  # Run with a specific theme
  lanterna --theme dracula

  # List all available themes
  lanterna --list-themes

  # Preview a theme's colors
  lanterna --preview-theme dracula

  # Use double-line borders with titles along the bottom edge
  lanterna --border-style double --title-position bottom

  # Run with CPU profiling
  lanterna --cpuprofile cpu.prof

  # Edit configuration
  lanterna config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}

			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters for borders and badges")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's 16 ANSI colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&windowTitlePosition, "title-position", "", "Window title position: top, bottom, hidden (default: from config or top)")
	rootCmd.PersistentFlags().BoolVar(&noStatusBar, "no-status-bar", false, "Hide the status bar")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lanterna configuration",
		Long:  `Manage the lanterna configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the lanterna configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the lanterna configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the lanterna configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)
	rootCmd.AddCommand(configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

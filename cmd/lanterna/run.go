package main

import (
	"bufio"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"runtime/pprof"
	"slices"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/nguyenmp/lanterna/internal/app"
	"github.com/nguyenmp/lanterna/internal/config"
	"github.com/nguyenmp/lanterna/internal/theme"
)

func runLocal() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	activeTheme := config.ApplyOverrides(config.Overrides{
		ASCIIOnly:           asciiOnly,
		BorderStyle:         borderStyle,
		WindowTitlePosition: windowTitlePosition,
		HideStatusBar:       noStatusBar,
		ThemeName:           themeName,
	}, userConfig)

	if activeTheme != "" {
		if err := theme.Initialize(activeTheme); err != nil {
			log.Printf("Warning: Failed to initialize theme %q: %v", activeTheme, err)
		}
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Printf("Warning: failed to close CPU profile file: %v", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Printf("Configuration: %s", configPath)
	}

	// Windows added before the first resize event are placed against the
	// assumed terminal size, so seed it from the real terminal when we can.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		config.AssumedTerminalWidth = w
		config.AssumedTerminalHeight = h
	}

	gui := app.NewGUI(nil)
	gui.Keybinds = config.NewKeybindRegistry(userConfig)
	if debugMode {
		gui.ShowLogs = true
	}

	p := tea.NewProgram(
		gui,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns the user's preferred editor, falling back to common
// editors found on PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}
	for _, editor := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $EDITOR or install vim, vi, nano, or emacs")
}

func editConfigFile() error {
	// Ensure the config file exists before opening it.
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}

	// #nosec G204 - editor comes from the user's own environment
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	fmt.Printf("This will overwrite %s with default settings.\n", path)
	fmt.Print("Continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	written, err := config.ResetConfig()
	if err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset: %s\n", written)
	return nil
}

func previewThemeColors(name string) error {
	if !slices.Contains(theme.Available(), name) {
		return fmt.Errorf("unknown theme %q (use --list-themes to see available themes)", name)
	}
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to initialize theme: %w", err)
	}

	names := []string{
		"black", "red", "green", "yellow", "blue", "purple", "cyan", "white",
		"bright black", "bright red", "bright green", "bright yellow",
		"bright blue", "bright purple", "bright cyan", "bright white",
	}

	fmt.Printf("Theme: %s\n\n", name)
	for i, c := range theme.ANSIPalette() {
		swatch := lipgloss.NewStyle().Background(c).Render("        ")
		fmt.Printf("%2d  %s  %s  %s\n", i, swatch, hexColor(c), names[i])
	}
	return nil
}

// hexColor formats a color as #rrggbb.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

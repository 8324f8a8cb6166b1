// Package lanterna provides a character-cell window manager that can be
// embedded in other Bubble Tea applications or run as a standalone TUI.
//
// Windows are placed and sized by a Manager. The default manager cascades
// new windows across the screen and honors placement hints such as
// Centered, FullScreen, Expanded and FixedPosition.
//
// # Basic Usage
//
// Create a new model with default options:
//
//	model := lanterna.New()
//	p := tea.NewProgram(model, lanterna.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize behavior:
//
//	model := lanterna.New(
//		lanterna.WithTheme("dracula"),
//		lanterna.WithBorderStyle("double"),
//		lanterna.WithSize(120, 40),
//	)
//
// # Driving the Manager Directly
//
// The placement engine can be used without the TUI runtime:
//
//	mgr := lanterna.NewDefaultManager()
//	w := lanterna.NewBaseWindow("hello", lanterna.NewTerminalSize(20, 5), lanterna.HintCentered)
//	mgr.OnAdded(gui, w, nil)
package lanterna

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nguyenmp/lanterna/internal/app"
	"github.com/nguyenmp/lanterna/internal/config"
	"github.com/nguyenmp/lanterna/internal/geom"
	"github.com/nguyenmp/lanterna/internal/theme"
	"github.com/nguyenmp/lanterna/internal/wm"
)

// Model is the main lanterna model that implements tea.Model.
// It wraps the internal GUI struct and provides a clean public API.
type Model = app.GUI

// Window is a managed window hosted by the Model.
type Window = app.Window

// Geometry types used by the window manager.
type (
	// TerminalSize is a width and height in character cells.
	TerminalSize = geom.TerminalSize
	// TerminalPosition is a column and row coordinate, zero-based
	// from the top-left corner.
	TerminalPosition = geom.TerminalPosition
)

// NewTerminalSize returns a size with the given column and row counts.
func NewTerminalSize(columns, rows int) TerminalSize {
	return geom.NewTerminalSize(columns, rows)
}

// NewTerminalPosition returns a position at the given column and row.
func NewTerminalPosition(column, row int) TerminalPosition {
	return geom.NewTerminalPosition(column, row)
}

// Manager types re-exported from the window manager package.
type (
	// Manager decides where windows go and how big they are.
	Manager = wm.Manager
	// DefaultManager is the cascading hint-driven Manager.
	DefaultManager = wm.DefaultManager
	// DecorationRenderer sizes and draws window decorations.
	DecorationRenderer = wm.DecorationRenderer
	// Hint is a placement hint attached to a window at creation.
	Hint = wm.Hint
	// BaseWindow is a ready-made Window implementation.
	BaseWindow = wm.BaseWindow
)

// Placement hints.
const (
	HintNoDecorations     = wm.HintNoDecorations
	HintFixedPosition     = wm.HintFixedPosition
	HintFixedSize         = wm.HintFixedSize
	HintCentered          = wm.HintCentered
	HintFullScreen        = wm.HintFullScreen
	HintExpanded          = wm.HintExpanded
	HintFitTerminalWindow = wm.HintFitTerminalWindow
)

// NewDefaultManager returns a Manager with the default decoration
// renderer and an assumed screen size of 80x24 until the first layout.
func NewDefaultManager(opts ...wm.DefaultManagerOption) *DefaultManager {
	return wm.NewDefaultManager(opts...)
}

// NewBaseWindow returns a window with the given title, preferred
// content size and hints.
func NewBaseWindow(title string, preferredSize TerminalSize, hints Hint) *BaseWindow {
	return wm.NewBaseWindow(title, preferredSize, hints)
}

// Options configures a lanterna instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Unicode box drawing.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "ascii"
	BorderStyle string

	// TitlePosition sets where window titles appear.
	// Valid values: "top", "bottom", "hidden"
	TitlePosition string

	// HideStatusBar removes the status bar from the bottom row.
	HideStatusBar bool

	// Width is the assumed screen width before the first resize event.
	// When 0 the configured assumed size is used (default 80).
	Width int

	// Height is the assumed screen height before the first resize event.
	// When 0 the configured assumed size is used (default 24).
	Height int

	// Manager is the window manager to use. If nil, a DefaultManager
	// is created.
	Manager Manager

	// UserConfig is a custom user configuration. If nil, defaults are used.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring lanterna.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only borders.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithTitlePosition sets the window title position.
func WithTitlePosition(position string) Option {
	return func(o *Options) {
		o.TitlePosition = position
	}
}

// WithHideStatusBar hides the status bar.
func WithHideStatusBar(hide bool) Option {
	return func(o *Options) {
		o.HideStatusBar = hide
	}
}

// WithSize sets the assumed screen size used before the first
// terminal resize event arrives.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithManager sets a custom window manager.
func WithManager(m Manager) Option {
	return func(o *Options) {
		o.Manager = m
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{}
}

// New creates a new lanterna model with the given options.
// This is the main entry point for using lanterna as a library.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) *Model {
	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	themeName := config.ApplyOverrides(config.Overrides{
		ASCIIOnly:           options.ASCIIOnly,
		BorderStyle:         options.BorderStyle,
		WindowTitlePosition: options.TitlePosition,
		HideStatusBar:       options.HideStatusBar,
		ThemeName:           options.Theme,
	}, userConfig)
	if themeName != "" {
		_ = theme.Initialize(themeName)
	}

	// Explicit size beats the config file's assumed terminal size.
	if options.Width > 0 {
		config.AssumedTerminalWidth = options.Width
	}
	if options.Height > 0 {
		config.AssumedTerminalHeight = options.Height
	}

	gui := app.NewGUI(options.Manager)
	gui.Keybinds = config.NewKeybindRegistry(userConfig)
	return gui
}

// ProgramOptions returns recommended tea.ProgramOption values for
// running lanterna:
//
//	model := lanterna.New()
//	p := tea.NewProgram(model, lanterna.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

// Config re-exports the config package for customization.
// This allows users to access configuration helpers without importing
// internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}

package config

import "testing"

func resetGlobals() {
	UseASCIIOnly = false
	BorderStyle = "rounded"
	WindowTitlePosition = "top"
	HideStatusBar = false
	AssumedTerminalWidth = DefaultTerminalWidth
	AssumedTerminalHeight = DefaultTerminalHeight
}

func TestFillMissing(t *testing.T) {
	tests := []struct {
		name string
		in   UserConfig
		want UserConfig
	}{
		{
			name: "empty config gets defaults",
			in:   UserConfig{},
			want: *DefaultConfig(),
		},
		{
			name: "unknown border style replaced",
			in: UserConfig{
				Appearance: AppearanceConfig{BorderStyle: "zigzag", WindowTitlePosition: "bottom"},
				Terminal:   TerminalConfig{AssumedColumns: 120, AssumedRows: 40},
			},
			want: UserConfig{
				Appearance: AppearanceConfig{BorderStyle: "rounded", WindowTitlePosition: "bottom"},
				Terminal:   TerminalConfig{AssumedColumns: 120, AssumedRows: 40},
			},
		},
		{
			name: "negative terminal size replaced",
			in: UserConfig{
				Appearance: AppearanceConfig{BorderStyle: "double", WindowTitlePosition: "hidden"},
				Terminal:   TerminalConfig{AssumedColumns: -1, AssumedRows: 0},
			},
			want: UserConfig{
				Appearance: AppearanceConfig{BorderStyle: "double", WindowTitlePosition: "hidden"},
				Terminal:   TerminalConfig{AssumedColumns: 80, AssumedRows: 24},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			fillMissing(&cfg, DefaultConfig())
			if cfg.Appearance != tt.want.Appearance || cfg.Terminal != tt.want.Terminal {
				t.Errorf("fillMissing() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestApplyOverridesPrecedence(t *testing.T) {
	t.Cleanup(resetGlobals)
	resetGlobals()

	userCfg := &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:         "double",
			WindowTitlePosition: "bottom",
			HideStatusBar:       false,
			Theme:               "nord",
		},
		Terminal: TerminalConfig{AssumedColumns: 100, AssumedRows: 30},
	}

	theme := ApplyOverrides(Overrides{
		ASCIIOnly:   true,
		BorderStyle: "thick",
		ThemeName:   "dracula",
	}, userCfg)

	if !UseASCIIOnly {
		t.Error("UseASCIIOnly = false, want true")
	}
	if BorderStyle != "thick" {
		t.Errorf("BorderStyle = %q, want flag value %q", BorderStyle, "thick")
	}
	if WindowTitlePosition != "bottom" {
		t.Errorf("WindowTitlePosition = %q, want config value %q", WindowTitlePosition, "bottom")
	}
	if AssumedTerminalWidth != 100 || AssumedTerminalHeight != 30 {
		t.Errorf("assumed size = %dx%d, want 100x30", AssumedTerminalWidth, AssumedTerminalHeight)
	}
	if theme != "dracula" {
		t.Errorf("theme = %q, want flag value %q", theme, "dracula")
	}
}

func TestApplyOverridesNilConfig(t *testing.T) {
	t.Cleanup(resetGlobals)
	resetGlobals()

	theme := ApplyOverrides(Overrides{HideStatusBar: true}, nil)

	if !HideStatusBar {
		t.Error("HideStatusBar = false, want true")
	}
	if BorderStyle != "rounded" {
		t.Errorf("BorderStyle = %q, want default %q", BorderStyle, "rounded")
	}
	if theme != "" {
		t.Errorf("theme = %q, want empty", theme)
	}
}

func TestGetBorderForStyle(t *testing.T) {
	t.Cleanup(resetGlobals)

	tests := []struct {
		style     string
		asciiOnly bool
		wantTop   string
	}{
		{style: "rounded", wantTop: "─"},
		{style: "double", wantTop: "═"},
		{style: "thick", wantTop: "━"},
		{style: "ascii", wantTop: "-"},
		{style: "rounded", asciiOnly: true, wantTop: "-"},
		{style: "no-such-style", wantTop: "─"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			BorderStyle = tt.style
			UseASCIIOnly = tt.asciiOnly
			if got := GetBorderForStyle().Top; got != tt.wantTop {
				t.Errorf("GetBorderForStyle().Top = %q, want %q", got, tt.wantTop)
			}
		})
	}
}

func TestBorderCornerCharacters(t *testing.T) {
	t.Cleanup(resetGlobals)
	resetGlobals()

	BorderStyle = "rounded"
	if got := GetWindowBorderTopLeft(); got != "╭" {
		t.Errorf("GetWindowBorderTopLeft() = %q, want %q", got, "╭")
	}
	if got := GetWindowBorderBottomRight(); got != "╯" {
		t.Errorf("GetWindowBorderBottomRight() = %q, want %q", got, "╯")
	}

	UseASCIIOnly = true
	if got := GetWindowPillLeft(); got != "[" {
		t.Errorf("GetWindowPillLeft() = %q, want ASCII fallback", got)
	}
}

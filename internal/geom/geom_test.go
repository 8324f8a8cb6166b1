package geom

import "testing"

func TestTerminalSizeWithRelative(t *testing.T) {
	tests := []struct {
		name         string
		start        TerminalSize
		deltaColumns int
		deltaRows    int
		want         TerminalSize
	}{
		{
			name:         "grow both axes",
			start:        NewTerminalSize(80, 24),
			deltaColumns: 2,
			deltaRows:    1,
			want:         NewTerminalSize(82, 25),
		},
		{
			name:         "shrink by margin",
			start:        NewTerminalSize(80, 24),
			deltaColumns: -4,
			deltaRows:    -3,
			want:         NewTerminalSize(76, 21),
		},
		{
			name:         "shrink below zero is not clamped",
			start:        NewTerminalSize(2, 1),
			deltaColumns: -4,
			deltaRows:    -3,
			want:         NewTerminalSize(-2, -2),
		},
		{
			name:         "zero delta",
			start:        NewTerminalSize(10, 5),
			deltaColumns: 0,
			deltaRows:    0,
			want:         NewTerminalSize(10, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.WithRelative(tt.deltaColumns, tt.deltaRows)
			if got != tt.want {
				t.Errorf("WithRelative(%d, %d) = %v, want %v", tt.deltaColumns, tt.deltaRows, got, tt.want)
			}
		})
	}
}

func TestTerminalSizeWith(t *testing.T) {
	s := NewTerminalSize(80, 24)

	if got := s.WithColumns(100); got != NewTerminalSize(100, 24) {
		t.Errorf("WithColumns(100) = %v, want 100x24", got)
	}
	if got := s.WithRows(50); got != NewTerminalSize(80, 50) {
		t.Errorf("WithRows(50) = %v, want 80x50", got)
	}
	if got := s.WithRelativeColumns(-10); got != NewTerminalSize(70, 24) {
		t.Errorf("WithRelativeColumns(-10) = %v, want 70x24", got)
	}
	if got := s.WithRelativeRows(6); got != NewTerminalSize(80, 30) {
		t.Errorf("WithRelativeRows(6) = %v, want 80x30", got)
	}
	// Derivations never mutate the receiver.
	if s != NewTerminalSize(80, 24) {
		t.Errorf("receiver mutated to %v", s)
	}
}

func TestTerminalPositionWithRelative(t *testing.T) {
	tests := []struct {
		name        string
		start       TerminalPosition
		deltaColumn int
		deltaRow    int
		want        TerminalPosition
	}{
		{
			name:        "cascade offset",
			start:       Offset1x1,
			deltaColumn: 2,
			deltaRow:    1,
			want:        NewTerminalPosition(3, 2),
		},
		{
			name:        "negative coordinates allowed",
			start:       TopLeftCorner,
			deltaColumn: -5,
			deltaRow:    -2,
			want:        NewTerminalPosition(-5, -2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.WithRelative(tt.deltaColumn, tt.deltaRow)
			if got != tt.want {
				t.Errorf("WithRelative(%d, %d) = %v, want %v", tt.deltaColumn, tt.deltaRow, got, tt.want)
			}
		})
	}
}

func TestPositionConstants(t *testing.T) {
	if TopLeftCorner != NewTerminalPosition(0, 0) {
		t.Errorf("TopLeftCorner = %v, want (0,0)", TopLeftCorner)
	}
	if Offset1x1 != NewTerminalPosition(1, 1) {
		t.Errorf("Offset1x1 = %v, want (1,1)", Offset1x1)
	}
}

func TestStringFormats(t *testing.T) {
	if got := NewTerminalSize(12, 7).String(); got != "12x7" {
		t.Errorf("TerminalSize.String() = %q, want %q", got, "12x7")
	}
	if got := NewTerminalPosition(3, -2).String(); got != "(3,-2)" {
		t.Errorf("TerminalPosition.String() = %q, want %q", got, "(3,-2)")
	}
}

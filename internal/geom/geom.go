// Package geom defines the character-cell coordinate types shared by the
// window manager and the rendering layer. Sizes are measured in terminal
// cells and are expected to be non-negative; positions are signed so a
// window can sit partially or fully off-screen during layout.
package geom

import "fmt"

// TerminalSize is an immutable (columns, rows) pair.
type TerminalSize struct {
	Columns int // Width in cells
	Rows    int // Height in cells
}

// NewTerminalSize creates a size from columns and rows.
func NewTerminalSize(columns, rows int) TerminalSize {
	return TerminalSize{Columns: columns, Rows: rows}
}

// WithColumns returns a copy with the column count replaced.
func (s TerminalSize) WithColumns(columns int) TerminalSize {
	s.Columns = columns
	return s
}

// WithRows returns a copy with the row count replaced.
func (s TerminalSize) WithRows(rows int) TerminalSize {
	s.Rows = rows
	return s
}

// WithRelative returns a copy offset by the given deltas. The result is not
// clamped; callers that can produce degenerate sizes must tolerate them.
func (s TerminalSize) WithRelative(deltaColumns, deltaRows int) TerminalSize {
	s.Columns += deltaColumns
	s.Rows += deltaRows
	return s
}

// WithRelativeColumns returns a copy offset by deltaColumns.
func (s TerminalSize) WithRelativeColumns(deltaColumns int) TerminalSize {
	s.Columns += deltaColumns
	return s
}

// WithRelativeRows returns a copy offset by deltaRows.
func (s TerminalSize) WithRelativeRows(deltaRows int) TerminalSize {
	s.Rows += deltaRows
	return s
}

func (s TerminalSize) String() string {
	return fmt.Sprintf("%dx%d", s.Columns, s.Rows)
}

// TerminalPosition is an immutable (column, row) pair. Both components are
// signed: a negative coordinate means the window hangs off the top or left
// edge, which the layout algorithms permit transiently.
type TerminalPosition struct {
	Column int // X coordinate, 0 is the leftmost column
	Row    int // Y coordinate, 0 is the topmost row
}

// TopLeftCorner is position (0,0).
var TopLeftCorner = TerminalPosition{Column: 0, Row: 0}

// Offset1x1 is position (1,1), the default spot for the first window and the
// fallback when cascading would push a window out of bounds.
var Offset1x1 = TerminalPosition{Column: 1, Row: 1}

// NewTerminalPosition creates a position from column and row.
func NewTerminalPosition(column, row int) TerminalPosition {
	return TerminalPosition{Column: column, Row: row}
}

// WithColumn returns a copy with the column replaced.
func (p TerminalPosition) WithColumn(column int) TerminalPosition {
	p.Column = column
	return p
}

// WithRow returns a copy with the row replaced.
func (p TerminalPosition) WithRow(row int) TerminalPosition {
	p.Row = row
	return p
}

// WithRelative returns a copy offset by the given deltas.
func (p TerminalPosition) WithRelative(deltaColumn, deltaRow int) TerminalPosition {
	p.Column += deltaColumn
	p.Row += deltaRow
	return p
}

// WithRelativeColumn returns a copy offset by deltaColumn.
func (p TerminalPosition) WithRelativeColumn(deltaColumn int) TerminalPosition {
	p.Column += deltaColumn
	return p
}

// WithRelativeRow returns a copy offset by deltaRow.
func (p TerminalPosition) WithRelativeRow(deltaRow int) TerminalPosition {
	p.Row += deltaRow
	return p
}

func (p TerminalPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

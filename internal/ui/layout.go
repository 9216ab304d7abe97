package ui

import "github.com/diegok/remotepong/internal/game"

// Layout maps field pixels onto terminal cells. The field fills every row
// between the score bar and the status bar.
type Layout struct {
	Field   game.Field
	Cols    int
	Rows    int
	OffsetY int
}

func NewLayout(f game.Field, screenW, screenH int) Layout {
	l := Layout{Field: f, Cols: screenW, Rows: screenH - 2, OffsetY: 1}
	if l.Cols < 1 {
		l.Cols = 1
	}
	if l.Rows < 1 {
		l.Rows = 1
	}
	return l
}

// CellX is the column holding field x.
func (l Layout) CellX(x int) int {
	return (x - l.Field.Left) * l.Cols / l.Field.Width
}

// CellY is the row holding field y.
func (l Layout) CellY(y int) int {
	return l.OffsetY + (y-l.Field.Top)*l.Rows/l.Field.Height
}

// Width is how many columns a span of px field pixels covers, at least one.
func (l Layout) Width(px int) int {
	return atLeastOne(px * l.Cols / l.Field.Width)
}

// Height is how many rows a span of px field pixels covers, at least one.
func (l Layout) Height(px int) int {
	return atLeastOne(px * l.Rows / l.Field.Height)
}

// FieldY converts a screen row to the field y at the middle of that row.
// Rows outside the field report false.
func (l Layout) FieldY(row int) (int, bool) {
	r := row - l.OffsetY
	if r < 0 || r >= l.Rows {
		return 0, false
	}
	return l.Field.Top + (2*r+1)*l.Field.Height/(2*l.Rows), true
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

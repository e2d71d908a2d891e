package tui

import (
	"math"

	"go-wave-shooter/internal/config"
)

// hudRows is the number of terminal rows reserved for the status line.
const hudRows = 1

// Viewport maps the arena onto a terminal grid below the status line.
type Viewport struct {
	Cols, Rows int
}

// NewViewport sizes the arena to a terminal of width x height cells.
func NewViewport(width, height int) Viewport {
	rows := height - hudRows
	if rows < 1 {
		rows = 1
	}
	if width < 1 {
		width = 1
	}
	return Viewport{Cols: width, Rows: rows}
}

// Cell returns the terminal cell of world point x, y and whether it is on
// screen. Row 0 of the arena sits under the status line.
func (v Viewport) Cell(x, y float64) (int, int, bool) {
	col := int(math.Floor((x + config.HalfWidth) / config.ScreenWidth * float64(v.Cols)))
	row := int(math.Floor((config.HalfHeight - y) / config.ScreenHeight * float64(v.Rows)))
	if col < 0 || col >= v.Cols || row < 0 || row >= v.Rows {
		return col, row + hudRows, false
	}
	return col, row + hudRows, true
}

// World returns the world point at the centre of a terminal cell.
func (v Viewport) World(col, row int) (float64, float64) {
	row -= hudRows
	x := (float64(col)+0.5)/float64(v.Cols)*config.ScreenWidth - config.HalfWidth
	y := config.HalfHeight - (float64(row)+0.5)/float64(v.Rows)*config.ScreenHeight
	return x, y
}

// CellWidth is the world width of one column.
func (v Viewport) CellWidth() float64 {
	return config.ScreenWidth / float64(v.Cols)
}

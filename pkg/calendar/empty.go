package calendar

import (
	"strings"
	"time"
)

// EmptyGrid is a blank block. Collections use it to fill the last row of a
// grid so every row holds the same number of blocks.
type EmptyGrid struct {
	rows      int
	cellWidth int
	width     int
}

// NewEmptyGrid returns a blank block of rows lines, each cellWidth*7 spaces wide.
// Negative sizes are treated as zero.
func NewEmptyGrid(rows, cellWidth int) *EmptyGrid {
	rows, cellWidth = max(rows, 0), max(cellWidth, 0)
	return &EmptyGrid{rows: rows, cellWidth: cellWidth, width: cellWidth * 7}
}

// blankLike returns a blank block of the given height that is as wide as b.
func blankLike(rows int, b Block) *EmptyGrid {
	return &EmptyGrid{rows: max(rows, 0), cellWidth: b.CellWidth(), width: b.Width()}
}

func (e *EmptyGrid) Mark(time.Time)          {}
func (e *EmptyGrid) Unmark(time.Time)        {}
func (e *EmptyGrid) IsMarked(time.Time) bool { return false }
func (e *EmptyGrid) CellWidth() int          { return e.cellWidth }
func (e *EmptyGrid) Width() int              { return e.width }
func (e *EmptyGrid) Rows() int               { return e.rows }

func (e *EmptyGrid) String() string {
	if e.rows == 0 {
		return ""
	}
	line := blank(e.width)
	return strings.Repeat(line+"\n", e.rows-1) + line
}

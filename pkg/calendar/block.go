package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Block is anything that renders as a rectangular text grid: a single month,
// a blank filler or a composite of other blocks.
//
// String renders the block. Lines are separated by '\n' and there is no
// trailing newline. Every line is Width display columns wide and there are
// exactly Rows lines.
type Block interface {
	fmt.Stringer

	// Mark records date as marked if the block owns it.
	Mark(date time.Time)
	// Unmark clears date. Clearing an unmarked date is a no-op.
	Unmark(date time.Time)
	// IsMarked reports whether date is marked in this block.
	IsMarked(date time.Time) bool

	// CellWidth is the width of one day cell.
	CellWidth() int
	// Width is the display width of every rendered line.
	Width() int
	// Rows is the number of rendered lines, headers included.
	Rows() int
}

// Lines renders b and splits it into lines. A block with no rows yields nil.
func Lines(b Block) []string {
	if b.Rows() == 0 {
		return nil
	}
	return strings.Split(b.String(), "\n")
}

package calendar

import (
	"strconv"
	"time"
)

// YearColumns is the number of months per row in a YearGrid.
const YearColumns = 3

// YearGrid renders the twelve months of a year in a three-column collection
// titled with the year.
type YearGrid struct {
	year   int
	months [12]*MonthGrid
	grid   *Collection
}

// NewYearGrid builds the twelve month grids of year with the same start
// weekday, cell width, marker and options. Errors are those of NewMonthGrid.
func NewYearGrid(year int, start time.Weekday, cellWidth int, m Marker, opts ...MonthOption) (*YearGrid, error) {
	y := &YearGrid{year: year}
	blocks := make([]Block, 0, 12)
	for i := range y.months {
		g, err := NewMonthGrid(year, time.Month(i+1), start, cellWidth, m, opts...)
		if err != nil {
			return nil, err
		}
		y.months[i] = g
		blocks = append(blocks, g)
	}

	grid, err := NewCollection(strconv.Itoa(year), YearColumns, blocks...)
	if err != nil {
		return nil, err
	}
	y.grid = grid
	return y, nil
}

func (y *YearGrid) Year() int { return y.year }

// Month returns the grid of month m, or nil when m is out of range.
func (y *YearGrid) Month(m time.Month) *MonthGrid {
	if m < time.January || m > time.December {
		return nil
	}
	return y.months[m-1]
}

func (y *YearGrid) Mark(date time.Time)          { y.grid.Mark(date) }
func (y *YearGrid) Unmark(date time.Time)        { y.grid.Unmark(date) }
func (y *YearGrid) IsMarked(date time.Time) bool { return y.grid.IsMarked(date) }
func (y *YearGrid) CellWidth() int               { return y.grid.CellWidth() }
func (y *YearGrid) Width() int                   { return y.grid.Width() }
func (y *YearGrid) Rows() int                    { return y.grid.Rows() }
func (y *YearGrid) String() string               { return y.grid.String() }

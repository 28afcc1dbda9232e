package calendar

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/textcal/pkg/errors"
)

// Defaults used by DefaultMonthGrid.
const (
	DefaultStart     = time.Sunday
	DefaultCellWidth = 4
)

// WeekRange is the inclusive span of days shown on one row of a month grid.
type WeekRange struct {
	First int
	Last  int
}

// Len returns the number of days in the week row.
func (w WeekRange) Len() int { return w.Last - w.First + 1 }

// MonthGrid renders a single month: a title row, a weekday header row and one
// row per week.
//
// Years use astronomical numbering as in the time package, so year 0 is 1 BC
// and year -1 is 2 BC.
type MonthGrid struct {
	year      int
	month     time.Month
	weeks     []WeekRange
	start     time.Weekday
	cellWidth int
	marker    Marker
	marked    map[int]struct{}

	names       Names
	yearInTitle bool
}

// MonthOption customizes a MonthGrid.
type MonthOption func(*MonthGrid)

// WithNames substitutes the month and weekday name table.
func WithNames(n Names) MonthOption {
	return func(g *MonthGrid) { g.names = n }
}

// WithYearInTitle appends the year to the month name in the title row.
func WithYearInTitle() MonthOption {
	return func(g *MonthGrid) { g.yearInTitle = true }
}

// NewMonthGrid builds the grid for the given month. Rows start on start and
// every day cell is cellWidth columns wide. A nil marker leaves marked days
// undecorated.
//
// It fails with INVALID_DATE when month is outside 1-12, INVALID_WIDTH when
// cellWidth is outside 2-32 and INVALID_WEEKDAY for an unknown weekday.
func NewMonthGrid(year int, month time.Month, start time.Weekday, cellWidth int, m Marker, opts ...MonthOption) (*MonthGrid, error) {
	if err := errors.ValidateMonth(int(month)); err != nil {
		return nil, err
	}
	if err := errors.ValidateCellWidth(cellWidth); err != nil {
		return nil, err
	}
	if start < time.Sunday || start > time.Saturday {
		return nil, errors.New(errors.ErrCodeInvalidWeekday, "weekday %d out of range", int(start))
	}
	if m == nil {
		m = NoMarker
	}

	g := &MonthGrid{
		year:      year,
		month:     month,
		weeks:     partitionWeeks(year, month, start),
		start:     start,
		cellWidth: cellWidth,
		marker:    m,
		marked:    make(map[int]struct{}),
		names:     English,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// DefaultMonthGrid builds a Sunday-first grid with 4-column cells and
// bracketed marks.
func DefaultMonthGrid(year int, month time.Month) (*MonthGrid, error) {
	return NewMonthGrid(year, month, DefaultStart, DefaultCellWidth, Brackets)
}

// MonthString renders the default grid for the given month.
func MonthString(year int, month time.Month) (string, error) {
	g, err := DefaultMonthGrid(year, month)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// daysIn returns the number of days in month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// partitionWeeks splits the days of a month into rows. A row ends after the
// weekday preceding start, or on the last day of the month.
func partitionWeeks(year int, month time.Month, start time.Weekday) []WeekRange {
	last := daysIn(year, month)
	end := (start + 6) % 7
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()

	weeks := make([]WeekRange, 0, 6)
	cur := WeekRange{First: 1}
	for day := 1; day <= last; day++ {
		if wd == end || day == last {
			cur.Last = day
			weeks = append(weeks, cur)
			cur = WeekRange{First: day + 1}
		}
		wd = (wd + 1) % 7
	}
	return weeks
}

func (g *MonthGrid) Year() int           { return g.year }
func (g *MonthGrid) Month() time.Month   { return g.month }
func (g *MonthGrid) Start() time.Weekday { return g.start }
func (g *MonthGrid) CellWidth() int      { return g.cellWidth }
func (g *MonthGrid) Width() int          { return g.cellWidth * 7 }
func (g *MonthGrid) Rows() int           { return len(g.weeks) + 2 }
func (g *MonthGrid) Weeks() []WeekRange  { return append([]WeekRange(nil), g.weeks...) }

// owns reports whether date falls in this grid's year and month.
func (g *MonthGrid) owns(date time.Time) bool {
	return date.Year() == g.year && date.Month() == g.month
}

// Mark records the day of date. Dates outside this grid's month are ignored.
func (g *MonthGrid) Mark(date time.Time) {
	if g.owns(date) {
		g.marked[date.Day()] = struct{}{}
	}
}

// Unmark clears the day-of-month of date regardless of its year and month.
func (g *MonthGrid) Unmark(date time.Time) {
	delete(g.marked, date.Day())
}

// IsMarked reports whether date falls in this month and its day is marked.
func (g *MonthGrid) IsMarked(date time.Time) bool {
	if !g.owns(date) {
		return false
	}
	_, ok := g.marked[date.Day()]
	return ok
}

// Marked returns the marked days in ascending order.
func (g *MonthGrid) Marked() []int {
	days := make([]int, 0, len(g.marked))
	for d := range g.marked {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

func (g *MonthGrid) title() string {
	name := g.names.Month(g.month)
	if g.yearInTitle {
		name += " " + strconv.Itoa(g.year)
	}
	return name
}

// cell renders one day, decorated when marked.
func (g *MonthGrid) cell(day int) string {
	numeral := strconv.Itoa(day)
	if _, ok := g.marked[day]; ok {
		numeral = g.marker.Decorate(center(numeral, 2))
	}
	return center(numeral, g.cellWidth)
}

// String renders the month.
func (g *MonthGrid) String() string {
	w := g.cellWidth
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Rows())

	b.WriteString(center(truncate(g.title(), 7*w), 7*w))
	b.WriteByte('\n')

	abbrev := 2
	if w > 4 {
		abbrev = 3
	}
	for i := range 7 {
		b.WriteString(center(g.names.Abbrev((g.start+time.Weekday(i))%7, abbrev), w))
	}

	for i, week := range g.weeks {
		b.WriteByte('\n')
		if i == 0 {
			b.WriteString(blank(w * (7 - week.Len())))
		}
		for day := week.First; day <= week.Last; day++ {
			b.WriteString(g.cell(day))
		}
		if i == len(g.weeks)-1 {
			b.WriteString(blank(w * (7 - week.Len())))
		}
	}
	return b.String()
}

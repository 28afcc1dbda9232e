// Package calendar renders calendars as fixed-width monospaced text.
//
// # Overview
//
// Every renderable unit is a [Block]: a rectangle of text lines that all share
// the same display width. Blocks can be marked on individual dates, and the
// marked days are decorated by a [Marker] when rendered.
//
// The package provides four blocks:
//
//   - [MonthGrid]: a single month with a title row, a weekday header and one row per week
//   - [EmptyGrid]: blank filler used to complete ragged grids
//   - [Collection]: a titled multi-column grid of other blocks, including other collections
//   - [YearGrid]: the twelve months of a year in three columns
//
// # Basic Usage
//
//	feb, _ := calendar.NewMonthGrid(2024, time.February, time.Sunday, 4, calendar.Brackets)
//	feb.Mark(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC))
//	fmt.Println(feb)
//
// produces
//
//	          February
//	 Su  Mo  Tu  We  Th  Fr  Sa
//	                 1   2   3
//	 4   5   6   7   8   9   10
//	 11  12  13 [14] 15  16  17
//	 18  19  20  21  22  23  24
//	 25  26  27  28  29
//
// (trailing spaces omitted; real output pads every line to 28 columns).
//
// # Week Rows
//
// A month is split into week rows starting on a chosen weekday. A row closes
// after the weekday preceding the start weekday or on the last day of the
// month, which yields four to six rows. The first row is padded with blank
// cells on the left and the last row on the right.
//
// # Sizing
//
// The day cell width is the unit of measure. Month and blank blocks are
// always CellWidth*7 columns wide; a [Collection] is as wide as its widest row
// of blocks plus the gaps between them.
//
// # Markers
//
// [Marker] decorates the two-column numeral of a marked day ("1 ", "14"). The
// built-in markers are [NoMarker], [Brackets], [Underscore], [CharMarker] and
// [PadMarker]; [MarkerFunc] adapts any function. Decorations wider than the
// cell width push the rest of the row to the right.
//
// # Names
//
// Month and weekday names come from a [Names] table, [English] by default.
// [LookupNames] returns built-in tables by locale tag and [WithNames] applies
// a table to a grid. Widths are measured in terminal columns, so tables with
// wide characters such as [Japanese] stay aligned.
//
// # Concurrency
//
// Blocks are not safe for concurrent use. Callers that share a block across
// goroutines must serialize access themselves.
package calendar

// Package pkg provides the libraries behind textcal, a renderer of plain-text
// calendars.
//
// # Overview
//
// Calendars are built from blocks: fixed-width rectangles of text that can
// be marked with dates and arranged in titled grids. The pkg directory is
// organized into three areas:
//
//  1. [calendar] - Domain logic (month grids, collections, year grids, markers)
//  2. [pipeline] - Orchestration (options → block → text) shared by CLI and server
//  3. Infrastructure ([cache], [errors], [holidays], [observability], [buildinfo])
//
// # Architecture
//
// The typical data flow through textcal:
//
//	CLI flags / config file / HTTP query
//	         ↓
//	    [pipeline] Options (validate, apply defaults, resolve holidays)
//	         ↓
//	    [calendar] Block (MonthGrid, Collection or YearGrid)
//	         ↓
//	    text, optionally stored in [cache]
//
// # Quick Start
//
// Render a year with Monday as the first weekday and one marked date:
//
//	import (
//	    "fmt"
//	    "time"
//
//	    "github.com/matzehuels/textcal/pkg/calendar"
//	)
//
//	y, _ := calendar.NewYearGrid(2024, time.Monday, calendar.DefaultCellWidth, calendar.Brackets)
//	y.Mark(time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC))
//	fmt.Println(y)
//
// Or let the pipeline resolve everything from strings:
//
//	r := pipeline.NewRunner(cache.NewMemoryCache(), nil)
//	res, _ := r.Execute(ctx, pipeline.Options{
//	    Kind:     pipeline.KindGrid,
//	    Year:     2024,
//	    Month:    11,
//	    Months:   6,
//	    Columns:  2,
//	    Locale:   "de",
//	    Holidays: "de-nrw",
//	})
//	fmt.Println(res.Text)
//
// # Testing
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/calendar/...    # Specific package
//	go test -run Example ./pkg/...  # Examples only
//
// [calendar]: https://pkg.go.dev/github.com/matzehuels/textcal/pkg/calendar
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/textcal/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/textcal/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/textcal/pkg/errors
// [holidays]: https://pkg.go.dev/github.com/matzehuels/textcal/pkg/holidays
// [observability]: https://pkg.go.dev/github.com/matzehuels/textcal/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/textcal/pkg/buildinfo
package pkg

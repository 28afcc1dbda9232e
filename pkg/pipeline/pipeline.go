// Package pipeline turns render options into calendar text.
//
// Both the CLI and the HTTP server go through this package, so defaults,
// validation, marking and caching behave the same for every entry point.
//
// # Stages
//
//  1. Validate: apply defaults and check every option
//  2. Build: construct the month, year or grid block and apply marks
//  3. Render: produce the text and record statistics
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Kind:  pipeline.KindYear,
//	    Year:  2024,
//	    Marks: []time.Time{time.Now()},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Text)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/textcal/pkg/calendar"
	"github.com/matzehuels/textcal/pkg/errors"
	"github.com/matzehuels/textcal/pkg/holidays"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// Render kinds.
const (
	KindMonth = "month"
	KindYear  = "year"
	KindGrid  = "grid"
)

const (
	// DefaultKind is the render kind used when none is given.
	DefaultKind = KindMonth

	// DefaultStart is the default first day of the week.
	DefaultStart = "sunday"

	// DefaultMarker decorates marked days with square brackets.
	DefaultMarker = "brackets"

	// DefaultLocale selects English month and weekday names.
	DefaultLocale = "en"

	// DefaultColumns is the column count of grid renders.
	DefaultColumns = calendar.YearColumns

	// DefaultMonths is the number of months in a grid render.
	DefaultMonths = 3

	// MaxMonths bounds grid renders.
	MaxMonths = 120

	// MinYear and MaxYear bound the years accepted from users.
	MinYear = -9999
	MaxYear = 9999
)

// ValidKinds is the set of supported render kinds.
var ValidKinds = map[string]bool{
	KindMonth: true,
	KindYear:  true,
	KindGrid:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one render.
// This struct supports JSON serialization and doubles as the cache key.
type Options struct {
	Kind        string          `json:"kind"`
	Year        int             `json:"year"`
	Month       int             `json:"month,omitempty"`  // month and grid kinds
	Months      int             `json:"months,omitempty"` // grid kind
	Columns     int             `json:"columns,omitempty"`
	Title       string          `json:"title,omitempty"` // grid kind; derived from the range when empty
	Start       string          `json:"start,omitempty"`
	CellWidth   int             `json:"cell_width,omitempty"`
	Marker      string          `json:"marker,omitempty"`
	Locale      string          `json:"locale,omitempty"`
	Names       *calendar.Names `json:"names,omitempty"` // overrides Locale
	YearInTitle bool            `json:"year_in_title,omitempty"`
	Marks       []time.Time     `json:"marks,omitempty"`
	Holidays    string          `json:"holidays,omitempty"` // region whose holidays are marked

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	start     time.Weekday
	marker    calendar.Marker
	names     calendar.Names
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Block is the built calendar. It is nil when the text came from the cache.
	Block calendar.Block

	// Text is the rendered calendar without a trailing newline.
	Text string

	// Stats contains size and timing information.
	Stats Stats

	// Cached reports whether Text came from the cache.
	Cached bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int           `json:"rows"`
	Width      int           `json:"width"`
	Marks      int           `json:"marks"` // distinct dates shown as marked
	BuildTime  time.Duration `json:"-"`
	RenderTime time.Duration `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateKind checks that a render kind is valid.
func ValidateKind(kind string) error {
	if !ValidKinds[kind] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid kind: %q (must be one of: month, year, grid)", kind)
	}
	return nil
}

// ValidateYear checks that a year is within MinYear and MaxYear.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return errors.New(errors.ErrCodeInvalidDate, "year %d out of range (must be %d to %d)", year, MinYear, MaxYear)
	}
	return nil
}

// ValidateMonths checks the month count of a grid render.
func ValidateMonths(n int) error {
	if n < 1 || n > MaxMonths {
		return errors.New(errors.ErrCodeInvalidInput, "month count %d out of range (must be 1 to %d)", n, MaxMonths)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := ValidateKind(o.Kind); err != nil {
		return err
	}
	if err := ValidateYear(o.Year); err != nil {
		return err
	}
	if o.Kind != KindYear {
		if err := errors.ValidateMonth(o.Month); err != nil {
			return err
		}
	}
	if o.Kind == KindGrid {
		if err := ValidateMonths(o.Months); err != nil {
			return err
		}
		if err := errors.ValidateColumns(o.Columns); err != nil {
			return err
		}
		if err := errors.ValidateTitle(o.Title); err != nil {
			return err
		}
	}
	if err := errors.ValidateCellWidth(o.CellWidth); err != nil {
		return err
	}

	start, err := calendar.ParseWeekday(o.Start)
	if err != nil {
		return err
	}
	marker, err := calendar.ParseMarker(o.Marker, o.CellWidth)
	if err != nil {
		return err
	}
	names, err := o.resolveNames()
	if err != nil {
		return err
	}

	marks := make([]time.Time, len(o.Marks))
	for i, d := range o.Marks {
		marks[i] = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	if o.Holidays != "" {
		first, last := o.YearSpan()
		dates, err := holidays.Dates(o.Holidays, first, last)
		if err != nil {
			return err
		}
		marks = append(marks, dates...)
	}
	o.Marks = marks

	o.start, o.marker, o.names = start, marker, names
	o.validated = true
	return nil
}

// SetDefaults fills zero-valued fields. Year is never defaulted since year 0
// is a valid year.
func (o *Options) SetDefaults() {
	if o.Kind == "" {
		o.Kind = DefaultKind
	}
	if o.Start == "" {
		o.Start = DefaultStart
	}
	if o.CellWidth == 0 {
		o.CellWidth = calendar.DefaultCellWidth
	}
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.Kind == KindGrid {
		if o.Months == 0 {
			o.Months = DefaultMonths
		}
		if o.Columns == 0 {
			o.Columns = DefaultColumns
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

func (o *Options) resolveNames() (calendar.Names, error) {
	if o.Names != nil {
		if err := o.Names.Validate(); err != nil {
			return calendar.Names{}, err
		}
		return *o.Names, nil
	}
	return calendar.LookupNames(o.Locale)
}

// monthOptions returns the grid options shared by every month of the render.
func (o *Options) monthOptions() []calendar.MonthOption {
	opts := []calendar.MonthOption{calendar.WithNames(o.names)}
	if o.YearInTitle {
		opts = append(opts, calendar.WithYearInTitle())
	}
	return opts
}

// YearSpan returns the first and last year shown by the render.
func (o *Options) YearSpan() (int, int) {
	if o.Kind != KindGrid {
		return o.Year, o.Year
	}
	last, _ := addMonths(o.Year, o.Month, max(o.Months, 1)-1)
	return o.Year, last
}

// addMonths returns the year and month n months after year-month.
func addMonths(year, month, n int) (int, time.Month) {
	t := time.Date(year, time.Month(month)+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// GridTitle returns the title of a grid render: Title when set, otherwise
// the first and last month of the range.
func (o *Options) GridTitle() string {
	if o.Title != "" {
		return o.Title
	}
	names := o.names
	if !o.validated {
		names = calendar.English
	}
	fy, fm := addMonths(o.Year, o.Month, 0)
	ly, lm := addMonths(o.Year, o.Month, o.Months-1)
	if o.Months <= 1 {
		return fmt.Sprintf("%s %d", names.Month(fm), fy)
	}
	return fmt.Sprintf("%s %d - %s %d", names.Month(fm), fy, names.Month(lm), ly)
}

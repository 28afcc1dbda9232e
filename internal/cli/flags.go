package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/textcal/pkg/calendar"
	"github.com/matzehuels/textcal/pkg/errors"
	"github.com/matzehuels/textcal/pkg/holidays"
	"github.com/matzehuels/textcal/pkg/pipeline"
)

// renderFlags holds the flags shared by the month, year and grid commands.
type renderFlags struct {
	start       string   // first day of the week
	width       int      // day cell width
	marker      string   // decoration of marked days
	locale      string   // month and weekday name table
	marks       []string // dates to mark (YYYY-MM-DD)
	today       bool     // mark the current date
	holidays    string   // holiday region to mark
	yearInTitle bool     // append the year to month titles
	output      string   // output file (stdout when empty)
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.start, "start", "", "first day of the week (default sunday)")
	fl.IntVar(&f.width, "width", 0, "day cell width in columns, at least 2 (default 4)")
	fl.StringVar(&f.marker, "marker", "", "marker: none, brackets (default), underscore, char:<c>, pad:<c>")
	fl.StringVar(&f.locale, "locale", "", "month and weekday names: "+strings.Join(calendar.Locales(), ", "))
	fl.StringArrayVar(&f.marks, "mark", nil, "mark a date (YYYY-MM-DD); repeatable")
	fl.BoolVar(&f.today, "today", false, "mark today's date")
	fl.StringVar(&f.holidays, "holidays", "", "mark public holidays: "+strings.Join(holidays.Regions(), ", "))
	fl.BoolVar(&f.yearInTitle, "year-in-title", false, "show the year next to each month name")
	fl.StringVarP(&f.output, "output", "o", "", "write the calendar to a file instead of stdout")

	_ = cmd.RegisterFlagCompletionFunc("locale", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return calendar.Locales(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("holidays", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return holidays.Regions(), cobra.ShellCompDirectiveNoFileComp
	})
}

// resolve merges built-in defaults, the config file and flags into opts.
// Flags win over config, config wins over defaults.
func (c *CLI) resolve(cmd *cobra.Command, f *renderFlags, opts pipeline.Options) (pipeline.Options, error) {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return opts, err
	}
	if err := cfg.apply(&opts); err != nil {
		return opts, err
	}

	changed := cmd.Flags().Changed
	if changed("start") {
		opts.Start = f.start
	}
	if changed("width") {
		opts.CellWidth = f.width
	}
	if changed("marker") {
		opts.Marker = f.marker
	}
	if changed("locale") {
		opts.Locale = f.locale
		opts.Names = nil
	}
	if changed("year-in-title") {
		opts.YearInTitle = f.yearInTitle
	}
	opts.SetDefaults()

	for _, s := range append(cfg.Marks, f.marks...) {
		d, err := pipeline.ParseDate(s)
		if err != nil {
			return opts, err
		}
		opts.Marks = append(opts.Marks, d)
	}
	if f.today {
		opts.Marks = append(opts.Marks, c.Now())
	}

	opts.Holidays = cfg.Holidays
	if changed("holidays") {
		opts.Holidays = f.holidays
	}
	return opts, nil
}

// errArgs reports an invalid command-line argument.
func errArgs(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidInput, format, args...)
}

// writeOutput writes text to the command's stdout, or to path when set.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write([]byte(text + "\n"))
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// warnMarkerWidth warns when marked days are wider than the day cell, which
// shifts every following cell of their row.
func warnMarkerWidth(cmd *cobra.Command, opts pipeline.Options) {
	if errors.ValidateCellWidth(opts.CellWidth) != nil {
		return
	}
	m, err := calendar.ParseMarker(opts.Marker, opts.CellWidth)
	if err != nil {
		return
	}
	if w := calendar.MarkerWidth(m); w > opts.CellWidth {
		printWarning(cmd.ErrOrStderr(), "marker %q needs %d columns but cells are %d wide; marked rows will not align (use --width %d or --marker none)",
			opts.Marker, w, opts.CellWidth, w)
	}
}

// run executes a resolved render and reports file output on stderr.
func (c *CLI) run(cmd *cobra.Command, f *renderFlags, opts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	warnMarkerWidth(cmd, opts)
	prog := newProgress(logger, pipeline.Describe(opts))
	res, err := c.newRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, f.output, res.Text); err != nil {
		return err
	}
	if f.output == "" {
		return nil
	}

	errw := cmd.ErrOrStderr()
	printSuccess(errw, "Rendered %s", pipeline.Describe(opts))
	printFile(errw, f.output)
	printStats(errw, res.Stats)
	prog.done(f.output)
	return nil
}

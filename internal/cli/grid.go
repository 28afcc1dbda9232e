package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/textcal/pkg/errors"
	"github.com/matzehuels/textcal/pkg/pipeline"
)

// colsAuto fits the column count to the terminal width.
const colsAuto = "auto"

// gridCommand creates the grid command for consecutive months.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		f      renderFlags
		from   string
		months int
		cols   string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print consecutive months in a titled grid",
		Long: `Print consecutive months in a titled grid.

The grid starts at --from (default: the current month) and spans --months
months laid out in --cols columns. With --cols auto the column count is
chosen to fit the terminal.

  textcal grid --from 2024-11 --months 6 --cols 2 --title "Winter"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := c.Now()
			opts := pipeline.Options{
				Kind:   pipeline.KindGrid,
				Year:   now.Year(),
				Month:  int(now.Month()),
				Months: months,
				Title:  title,
			}
			if cmd.Flags().Changed("months") {
				if err := pipeline.ValidateMonths(months); err != nil {
					return err
				}
			}
			if from != "" {
				y, m, err := pipeline.ParseYearMonth(from)
				if err != nil {
					return err
				}
				opts.Year, opts.Month = y, int(m)
			}

			opts, err := c.resolve(cmd, &f, opts)
			if err != nil {
				return err
			}

			auto := cols == colsAuto
			if cols != "" && !auto {
				n, err := strconv.Atoi(cols)
				if err != nil {
					return errArgs("invalid --cols %q (want a number or auto)", cols)
				}
				if err := errors.ValidateColumns(n); err != nil {
					return err
				}
				opts.Columns = n
			}

			if auto {
				if width, ok := terminalWidth(cmd.OutOrStdout()); ok && f.output == "" {
					opts.Columns = fitColumns(width, opts.CellWidth, opts.Months)
				} else {
					printWarning(cmd.ErrOrStderr(), "output is not a terminal, using %d columns", opts.Columns)
				}
			}
			return c.run(cmd, &f, opts)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "first month as YYYY-MM (default: current month)")
	cmd.Flags().IntVar(&months, "months", 0, "number of months (default 3)")
	cmd.Flags().StringVar(&cols, "cols", "", "months per row, or auto (default 3)")
	cmd.Flags().StringVar(&title, "title", "", "grid title (default: the month range)")
	return cmd
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// fitColumns returns the largest column count, at most months, whose grid of
// month blocks fits width. A row of n months is cellWidth*(8n-1) wide: n
// blocks of 7 cells plus n-1 gaps of one cell.
func fitColumns(width, cellWidth, months int) int {
	if cellWidth < 1 {
		return 1
	}
	n := (width/cellWidth + 1) / 8
	return max(1, min(n, months))
}

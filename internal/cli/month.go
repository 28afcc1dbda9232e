package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/textcal/pkg/pipeline"
)

// monthCommand creates the month command.
func (c *CLI) monthCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM | YEAR MONTH]",
		Short: "Print the calendar of one month",
		Long: `Print the calendar of one month.

Without arguments the current month is shown. The month can be given as
YYYY-MM or as a year followed by a month number or name:

  textcal month
  textcal month 2024-02
  textcal month 2024 feb --start monday --mark 2024-02-14`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := c.Now()
			opts := pipeline.Options{Kind: pipeline.KindMonth, Year: now.Year(), Month: int(now.Month())}

			switch len(args) {
			case 1:
				y, m, err := pipeline.ParseYearMonth(args[0])
				if err != nil {
					return err
				}
				opts.Year, opts.Month = y, int(m)
			case 2:
				y, err := pipeline.ParseYear(args[0])
				if err != nil {
					return err
				}
				m, err := pipeline.ParseMonth(args[1])
				if err != nil {
					return err
				}
				opts.Year, opts.Month = y, int(m)
			}

			opts, err := c.resolve(cmd, &f, opts)
			if err != nil {
				return err
			}
			return c.run(cmd, &f, opts)
		},
	}

	f.register(cmd)
	return cmd
}

// yearCommand creates the year command.
func (c *CLI) yearCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "year [YEAR]",
		Short: "Print the twelve months of a year",
		Long: `Print the twelve months of a year in three columns.

Without arguments the current year is shown:

  textcal year
  textcal year 2024 --holidays de-nrw --locale de`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Kind: pipeline.KindYear, Year: c.Now().Year()}
			if len(args) == 1 {
				y, err := pipeline.ParseYear(args[0])
				if err != nil {
					return err
				}
				opts.Year = y
			}

			opts, err := c.resolve(cmd, &f, opts)
			if err != nil {
				return err
			}
			return c.run(cmd, &f, opts)
		},
	}

	f.register(cmd)
	return cmd
}

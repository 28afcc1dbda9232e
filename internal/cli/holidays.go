package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/textcal/pkg/holidays"
	"github.com/matzehuels/textcal/pkg/pipeline"
)

// holidaysCommand lists the holidays that --holidays would mark.
func (c *CLI) holidaysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "holidays REGION [YEAR]",
		Short:     "List the holidays of a region",
		ValidArgs: holidays.Regions(),
		Args:      cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := c.Now().Year()
			if len(args) == 2 {
				y, err := pipeline.ParseYear(args[1])
				if err != nil {
					return err
				}
				year = y
			}

			days, err := holidays.ForYear(args[0], year)
			if err != nil {
				return err
			}
			for _, h := range days {
				printKeyValue(cmd.OutOrStdout(), h.Date.Format(pipeline.DateLayout), h.Name)
			}
			return nil
		},
	}
	return cmd
}

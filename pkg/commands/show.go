package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XolaniXAD/cosmic-calendar/pkg/commands/options"
	"github.com/XolaniXAD/cosmic-calendar/pkg/dateutil"
	"github.com/XolaniXAD/cosmic-calendar/pkg/printers"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "print the record for a date",
		Example: `
cosmic show
cosmic show 2020-01-01
cosmic show --date 2020-01-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("at most one date argument")
			}
			if len(args) == 1 {
				do.Date = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if do.Date != "" {
				if _, err := dateutil.Parse(do.Date); err != nil {
					return err
				}
				if !dateutil.InValidRange(do.Date) {
					return fmt.Errorf("no record available for %s: valid range is %s through today", do.Date, dateutil.Epoch)
				}
			}
			gw, err := loadGateway()
			if err != nil {
				return err
			}
			r, err := gw.Fetch(context.Background(), do.Date)
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{Wide: oo.Wide}
			pp.NewLine()
			pp.Record(r)
			return nil
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddOutputArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}

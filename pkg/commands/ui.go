package commands

import (
	"github.com/spf13/cobra"

	"github.com/XolaniXAD/cosmic-calendar/pkg/bookmarks"
	"github.com/XolaniXAD/cosmic-calendar/pkg/tui"
	"github.com/XolaniXAD/cosmic-calendar/pkg/viewstate"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the full-screen viewer",
		Example: `
cosmic ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := bookmarks.Open(nil)
			if err != nil {
				return err
			}
			gw, err := loadGateway()
			if err != nil {
				return err
			}
			notify, changes := tui.ChangeNotifier()
			ctrl := viewstate.New(gw, store, viewstate.WithOnChange(notify))
			return tui.Run(ctrl, store, changes)
		},
	}

	topLevel.AddCommand(cmd)
}

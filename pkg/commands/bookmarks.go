package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XolaniXAD/cosmic-calendar/pkg/bookmarks"
	"github.com/XolaniXAD/cosmic-calendar/pkg/dateutil"
	"github.com/XolaniXAD/cosmic-calendar/pkg/printers"
)

func addBookmarks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bm"},
		Short:   "list saved records",
		Example: `
cosmic bookmarks
cosmic bookmarks rm 2020-01-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := bookmarks.Open(nil)
			if err != nil {
				return err
			}
			set, err := store.Load()
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Bookmarks(set.Sorted())
			return nil
		},
	}

	cmd.AddCommand(bookmarksRemove())

	topLevel.AddCommand(cmd)
}

func bookmarksRemove() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <date>",
		Aliases: []string{"remove"},
		Short:   "remove a saved record by date",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if _, err := dateutil.Parse(date); err != nil {
				return err
			}
			store, err := bookmarks.Open(nil)
			if err != nil {
				return err
			}
			if !store.Has(date) {
				return fmt.Errorf("no bookmark for %s", date)
			}
			if err := store.Remove(date); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", date)
			return nil
		},
	}
}

// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions captures the date selection flag shared by record commands.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the date flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Record date as YYYY-MM-DD. Defaults to the most recent record.")
}

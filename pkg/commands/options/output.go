package options

import (
	"github.com/spf13/cobra"
)

// OutputOptions captures display flags for printed records.
type OutputOptions struct {
	Wide bool
}

// AddOutputArgs wires output flags on the provided command.
func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.Wide, "wide", false,
		"Wrap explanations at 120 columns instead of 78.")
}

// Package commands assembles the cosmic CLI.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/XolaniXAD/cosmic-calendar/pkg/gateway"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cosmic",
		Short: base.Wrap80("A daily astronomy picture viewer for the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addBookmarks(topLevel)
	addServe(topLevel)
	addVersion(topLevel)
}

// loadGateway builds the record client from config. The viewer talks to the
// relay by default; point "api" straight at a compatible endpoint to skip it.
func loadGateway() (*gateway.Client, error) {
	viper.SetDefault("api", "http://localhost:9090")
	viper.SetEnvPrefix("COSMIC")
	viper.AutomaticEnv()
	return gateway.New(viper.GetString("api"))
}

package commands

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/XolaniXAD/cosmic-calendar/pkg/relay"
)

func addServe(topLevel *cobra.Command) {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the record passthrough endpoint",
		Long: `Serve GET /api/record, forwarding date queries to the upstream
astronomy picture API with the configured key and relaying its JSON.`,
		Example: `
cosmic serve
COSMIC_API_KEY=... cosmic serve --listen :9090
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.SetDefault("upstream", "https://api.nasa.gov/planetary/apod")
			viper.SetDefault("api_key", "DEMO_KEY")
			viper.SetEnvPrefix("COSMIC")
			viper.AutomaticEnv()

			s := relay.NewServer(viper.GetString("upstream"), viper.GetString("api_key"))
			log.Printf("serving /api/record on %s", listen)
			return http.ListenAndServe(listen, s)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":9090", "Address to listen on.")

	topLevel.AddCommand(cmd)
}

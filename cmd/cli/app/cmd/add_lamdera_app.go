package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(addLamderaAppCmd)
}

var addLamderaAppCmd = &cobra.Command{
	Use:   "add-lamdera-app [domain]",
	Short: "Points a domain at a Lamdera app",
	Long: `Creates a proxied CNAME record "@ -> apps.lamdera.app" for the domain via
flarectl, using the active profile's credentials. Falls back to the
profile's default zone when no domain is given. An already existing record
is treated as success.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectLamderaCommandHandler()
		if err != nil {
			return err
		}

		domain := ""
		if len(args) == 1 {
			domain = args[0]
		}
		return handler.HandleAddApp(domain)
	},
}

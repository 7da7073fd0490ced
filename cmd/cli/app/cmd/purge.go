package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(purgeCmd)
}

var purgeCmd = &cobra.Command{
	Use:   "purge [zone]",
	Short: "Purges the full cache of a zone",
	Long: `Purges everything from a zone's cache via flarectl, using the active
profile's credentials. Falls back to the profile's default zone when no zone
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPurgeCommandHandler()
		if err != nil {
			return err
		}

		zone := ""
		if len(args) == 1 {
			zone = args[0]
		}
		return handler.HandlePurge(zone)
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(useCmd)
}

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switches to a specific profile",
	Long: `Activates the named profile: rewrites ~/.cloudflare.env with its
credentials and emits a "source" line on stdout for the shell hook.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: ProfileNamesCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSwitchCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleUse(args[0])
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Removes a profile",
	Long: `Removes the named profile. Removing the active profile leaves no profile
active until the next 'use' or rotation.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: ProfileNamesCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectRemoveCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleRemove(args[0])
	},
}

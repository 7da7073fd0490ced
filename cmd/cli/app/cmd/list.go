package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all profiles",
	Long:  `Lists all profiles in alphabetical order, marking the active one with ON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectListCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleList()
	},
}

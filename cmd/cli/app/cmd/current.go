package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Shows the active profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCurrentCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleCurrent()
	},
}

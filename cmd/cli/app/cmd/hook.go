package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(hookCmd)
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Prints the shell integration snippet",
	Long: `Prints a shell function that wraps cf-switch and evaluates its stdout, so
activating a profile updates the calling shell's environment. The snippet is
chosen based on $SHELL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectHookCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleHook()
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stderr, "cf-switch %s\n", version)
	},
}

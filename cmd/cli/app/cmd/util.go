package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

// ProfileNamesCompletion completes profile-name arguments from the config.
func ProfileNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	profileRepo, err := app.InjectProfileRepository()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	config, err := profileRepo.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return config.SortedNames(), cobra.ShellCompDirectiveNoFileComp
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

var rootCmd = &cobra.Command{
	Use:   "cf-switch",
	Short: "Cloudflare profile switcher for flarectl",
	Long: `cf-switch manages named Cloudflare credential profiles and switches the
active one by rewriting ~/.cloudflare.env, a file your shell sources.

Profiles are stored in ~/.cf-switch.json. Running cf-switch with no
arguments rotates to the next profile in alphabetical order.

Status text is printed to stderr; stdout only ever carries a "source ..."
line, so the output can be evaluated by a shell hook (see 'cf-switch hook').

Common workflows:
  cf-switch add work -e me@work.com -t <token> -z example.com
  cf-switch use work          Activate a specific profile
  cf-switch                   Rotate to the next profile
  cf-switch purge             Purge the cache of the active profile's zone`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSwitchCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleRotate()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

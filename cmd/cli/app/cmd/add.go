package cmd

import (
	"github.com/spf13/cobra"

	"cfswitch/cmd/cli/app"
)

var (
	addEmail   string
	addToken   string
	addZone    string
	addKeyring bool
)

func init() {
	addCmd.Flags().StringVarP(&addEmail, "email", "e", "", "Cloudflare account email")
	addCmd.Flags().StringVarP(&addToken, "token", "t", "", "API token (prompted securely if omitted)")
	addCmd.Flags().StringVarP(&addZone, "zone", "z", "", "default zone for this profile (e.g. example.com)")
	addCmd.Flags().BoolVar(&addKeyring, "keyring", false, "store the token in the OS keyring instead of the config file")
	_ = addCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Adds a new profile",
	Long: `Adds a new named profile. Fails if the name is already taken; existing
profiles are never overwritten.`,
	Example: `  # Add a profile with an inline token and a default zone
  cf-switch add work -e me@work.com -t abc123 -z example.com

  # Prompt for the token and keep it in the OS keyring
  cf-switch add personal -e me@home.com --keyring`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectAddCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleAdd(args[0], addEmail, addToken, addZone, addKeyring)
	},
}

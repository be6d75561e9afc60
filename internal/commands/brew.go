package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/brewlog/internal/session"
	"github.com/balkashynov/brewlog/internal/tui"
)

var brewCmd = &cobra.Command{
	Use:   "brew",
	Short: "Open the brew logger (default)",
	Long: `Open the interactive brew logger: sign in, time the brew, fill in the
form and save it with ctrl+s.`,
	Args: cobra.NoArgs,
	RunE: withApp(runBrew),
}

func runBrew(cmd *cobra.Command, args []string, a *app) error {
	email, _ := cmd.Flags().GetString("email")

	return tui.RunBrewTUI(tui.Options{
		Backend: a.backend,
		Store:   session.New(nil),
		Log:     a.log.Named("tui"),
		Timeout: a.cfg.Timeout,
		Email:   email,
	})
}

func init() {
	brewCmd.Flags().StringP("email", "e", "", "Pre-fill the login email")
}

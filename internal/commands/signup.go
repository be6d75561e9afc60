package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/brewlog/internal/gateway"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	Long:  `Create an account on the configured backend. The password comes from BREWLOG_PASSWORD or an interactive prompt.`,
	Args:  cobra.NoArgs,
	RunE:  withApp(runSignup),
}

func runSignup(cmd *cobra.Command, args []string, a *app) error {
	email, _ := cmd.Flags().GetString("email")
	if strings.TrimSpace(email) == "" {
		return errors.New("--email is required")
	}

	password, err := readPassword("Choose a password: ")
	if err != nil {
		return err
	}
	if err := gateway.ValidateCredentials(email, password); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
	defer cancel()

	user, err := a.backend.SignUp(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	a.log.Info("account created", "user", user.ID, "backend", a.backend.Name())

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Account created for %s\n", user.Email)
	if user.AccessToken == "" && a.backend.Name() == "supabase" {
		fmt.Fprintln(cmd.OutOrStdout(), "  Check your inbox to confirm the address, then sign in.")
	}
	return nil
}

func init() {
	signupCmd.Flags().StringP("email", "e", "", "Account email")
}

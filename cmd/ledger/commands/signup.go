package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ledger/internal/domain"
)

var errSignupRejected = errors.New("username already exists or invalid input, please choose a different username")

func signupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup <username>",
		Short: "Create an account with a zero balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := strings.TrimSpace(args[0])
			p := strings.TrimSpace(password)
			if u == "" || p == "" {
				return errEmptyCredentials
			}
			if len(p) < minPasswordLength {
				return errShortPassword
			}

			if !appCtx.Accounts.CreateAccount(domain.Username(u), p) {
				return errSignupRejected
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created successfully! Please log in.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the new account")
	return cmd
}

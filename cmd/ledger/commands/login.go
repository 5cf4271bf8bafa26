package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// login <username>: verify credentials and show the balance.
func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Check your credentials and print your balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username = args[0]
			acct, err := authenticate()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", acct.Username)
			printBalance(cmd.OutOrStdout(), acct.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "your password")
	return cmd
}

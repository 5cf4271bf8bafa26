package commands

import (
	"github.com/spf13/cobra"
)

func depositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Add funds to your account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := authenticate()
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			appCtx.Accounts.Deposit(acct.Username, amount)
			printBalance(cmd.OutOrStdout(), acct.Username)
			return nil
		},
	}
	credentialFlags(cmd)
	return cmd
}

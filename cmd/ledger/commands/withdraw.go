package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

var errWithdrawRejected = errors.New("insufficient funds or invalid input")

func withdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Take funds out of your account",
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

			if !appCtx.Accounts.Withdraw(acct.Username, amount) {
				return errWithdrawRejected
			}
			printBalance(cmd.OutOrStdout(), acct.Username)
			return nil
		},
	}
	credentialFlags(cmd)
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print your balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := authenticate()
			if err != nil {
				return err
			}
			printBalance(cmd.OutOrStdout(), acct.Username)
			return nil
		},
	}
	credentialFlags(cmd)
	return cmd
}

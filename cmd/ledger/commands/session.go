package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ledger/internal/domain"
)

const sessionHelp = "commands: deposit <amount>, withdraw <amount>, balance, logout"

// sessionCmd logs in once and then serves commands read from stdin until
// logout or end of input.
func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log in and run several operations interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := authenticate()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s. %s\n", acct.Username, sessionHelp)
			printBalance(out, acct.Username)

			return runSession(cmd.InOrStdin(), out, acct.Username)
		},
	}
	credentialFlags(cmd)
	return cmd
}

func runSession(in io.Reader, out io.Writer, user domain.Username) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		arg := strings.Join(fields[1:], " ")

		switch strings.ToLower(fields[0]) {
		case "deposit":
			amount, err := parseAmount(arg)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			appCtx.Accounts.Deposit(user, amount)
			printBalance(out, user)
		case "withdraw":
			amount, err := parseAmount(arg)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if !appCtx.Accounts.Withdraw(user, amount) {
				fmt.Fprintln(out, errWithdrawRejected)
				continue
			}
			printBalance(out, user)
		case "balance":
			printBalance(out, user)
		case "logout", "exit", "quit":
			fmt.Fprintln(out, "Logged out.")
			return nil
		case "help":
			fmt.Fprintln(out, sessionHelp)
		default:
			fmt.Fprintf(out, "unknown command %q; %s\n", fields[0], sessionHelp)
		}
	}
}

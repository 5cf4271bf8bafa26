package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ledger/internal/app"
	"ledger/internal/domain"
)

const minPasswordLength = 6

var (
	errEmptyCredentials  = errors.New("username and password cannot be empty")
	errShortPassword     = fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	errInvalidLogin      = errors.New("invalid login, please check your credentials")
	errAmountEmpty       = errors.New("amount cannot be empty")
	errAmountNotPositive = errors.New("amount must be greater than zero")
	errInvalidAmount     = errors.New("invalid amount, please enter a valid number")
)

var (
	cfg    app.Config
	appCtx *app.Wire

	username string
	password string
)

// Execute runs the CLI against the process arguments and standard streams.
func Execute() error {
	return Run(os.Args[1:], os.Stdin, os.Stdout)
}

// Run executes the CLI with the given arguments and streams.
func Run(args []string, in io.Reader, out io.Writer) error {
	appCtx = nil
	defer func() {
		if appCtx != nil {
			_ = appCtx.Close()
		}
	}()

	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	env := app.FromEnv()
	cfg = app.Config{}

	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Local account ledger",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".ledger")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			log, err := app.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Home, "home", env.Home, "data dir (default ~/.ledger)")
	flags.StringVar(&cfg.Backend, "backend", env.Backend, "storage backend: json or sqlite")
	flags.StringVar(&cfg.Passphrase, "passphrase", env.Passphrase, "seal the accounts file with this passphrase (json backend)")
	flags.BoolVar(&cfg.HashPasswords, "hash-passwords", env.HashPasswords, "store bcrypt hashes instead of plaintext passwords")
	flags.BoolVar(&cfg.Strict, "strict", env.Strict, "undo an operation when its changes cannot be saved")
	flags.StringVar(&cfg.LogLevel, "log-level", env.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(signupCmd(), loginCmd(), depositCmd(), withdrawCmd(), balanceCmd(), sessionCmd())
	return root
}

// credentialFlags binds --username/-u and --password/-p on cmd.
func credentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&username, "username", "u", "", "your username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "your password")
	_ = cmd.MarkFlagRequired("username")
}

// authenticate logs in with the bound credentials.
func authenticate() (domain.Account, error) {
	u := strings.TrimSpace(username)
	p := strings.TrimSpace(password)
	if u == "" || p == "" {
		return domain.Account{}, errEmptyCredentials
	}
	acct, ok := appCtx.Accounts.Login(domain.Username(u), p)
	if !ok {
		return domain.Account{}, errInvalidLogin
	}
	return acct, nil
}

// parseAmount turns user input into a positive amount. Only plain decimal
// notation is accepted.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errAmountEmpty
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Decimal{}, errInvalidAmount
	}
	amount, err := decimal.NewFromString(s)
	if err != nil || !domain.WithinScale(amount) {
		return decimal.Decimal{}, errInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, errAmountNotPositive
	}
	return amount, nil
}

func printBalance(w io.Writer, u domain.Username) {
	fmt.Fprintf(w, "Balance: %s\n", appCtx.Accounts.CheckBalance(u))
}

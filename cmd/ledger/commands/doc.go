// Package commands defines the ledger CLI and wires dependencies for subcommands.
//
// Commands
//
//   - signup    Create an account with a zero balance
//   - login     Check credentials and print the balance
//   - deposit   Add funds to your account
//   - withdraw  Take funds out of your account
//   - balance   Print your balance
//   - session   Log in once, then run deposit/withdraw/balance from stdin
//
// # Implementation
//
// The root command reads configuration from LEDGER_* variables (and an
// optional .env), lets persistent flags override it, and builds the account
// service before any subcommand runs. Input checks that belong to the front
// end, such as the minimum password length and amount parsing, live here;
// the account service enforces the ledger's own invariants.
package commands

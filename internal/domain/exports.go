package domain

import (
	"github.com/shopspring/decimal"

	interfaces "ledger/internal/domain/interfaces"
	types "ledger/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username = types.Username
	Account  = types.Account
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AccountService       = interfaces.AccountService
	AccountSnapshotStore = interfaces.AccountSnapshotStore
	CredentialPolicy     = interfaces.CredentialPolicy
)

// NewAccount returns a zero-balance account for username.
func NewAccount(username Username, password string) Account {
	return types.NewAccount(username, password)
}

// WithinScale reports whether d's exponent is small enough for ledger arithmetic.
func WithinScale(d decimal.Decimal) bool { return types.WithinScale(d) }

package interfaces

import (
	"github.com/shopspring/decimal"

	domaintypes "ledger/internal/domain/types"
)

// AccountService is the boundary the front end talks to. Every method is
// total: rejections are reported through the return value, never an error.
type AccountService interface {
	CreateAccount(username domaintypes.Username, password string) bool
	Login(username domaintypes.Username, password string) (domaintypes.Account, bool)
	Deposit(username domaintypes.Username, amount decimal.Decimal)
	Withdraw(username domaintypes.Username, amount decimal.Decimal) bool
	CheckBalance(username domaintypes.Username) decimal.Decimal
}

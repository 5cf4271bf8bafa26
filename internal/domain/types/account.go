package types

import "github.com/shopspring/decimal"

// Account is an immutable ledger entry. Every state change returns a new
// value; the receiver is never modified.
type Account struct {
	Username Username        `json:"username"`
	Password string          `json:"password"`
	Balance  decimal.Decimal `json:"balance"`
}

// NewAccount returns a zero-balance account for username.
func NewAccount(username Username, password string) Account {
	return Account{Username: username, Password: password, Balance: decimal.Zero}
}

// Deposit returns a copy with amount added to the balance. Non-positive
// amounts return the receiver unchanged.
func (a Account) Deposit(amount decimal.Decimal) Account {
	if !amount.IsPositive() {
		return a
	}
	a.Balance = a.Balance.Add(amount)
	return a
}

// Withdraw returns a copy with amount subtracted from the balance. The
// receiver is returned unchanged when amount is not positive or exceeds
// the balance.
func (a Account) Withdraw(amount decimal.Decimal) Account {
	if !amount.IsPositive() || a.Balance.LessThan(amount) {
		return a
	}
	a.Balance = a.Balance.Sub(amount)
	return a
}

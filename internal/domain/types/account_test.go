package types_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"ledger/internal/domain/types"
)

func TestAccount_Deposit(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		amount  string
		balance string
	}{
		{"positive amount", "0", "100", "100"},
		{"fractional amount", "0.1", "0.2", "0.3"},
		{"zero amount", "5", "0", "5"},
		{"negative amount", "5", "-3", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := types.Account{Username: "alice", Password: "secret1", Balance: decimal.RequireFromString(tt.start)}
			got := acct.Deposit(decimal.RequireFromString(tt.amount))

			if !got.Balance.Equal(decimal.RequireFromString(tt.balance)) {
				t.Fatalf("balance = %s, want %s", got.Balance, tt.balance)
			}
			if !acct.Balance.Equal(decimal.RequireFromString(tt.start)) {
				t.Fatalf("receiver mutated: %s", acct.Balance)
			}
			if got.Username != acct.Username || got.Password != acct.Password {
				t.Fatalf("credentials changed: %+v", got)
			}
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		amount  string
		balance string
	}{
		{"partial withdrawal", "100", "40", "60"},
		{"exact balance", "100", "100", "0"},
		{"insufficient funds", "100", "150", "100"},
		{"zero amount", "100", "0", "100"},
		{"negative amount", "100", "-1", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := types.Account{Username: "alice", Password: "secret1", Balance: decimal.RequireFromString(tt.start)}
			got := acct.Withdraw(decimal.RequireFromString(tt.amount))

			if !got.Balance.Equal(decimal.RequireFromString(tt.balance)) {
				t.Fatalf("balance = %s, want %s", got.Balance, tt.balance)
			}
			if got.Balance.IsNegative() {
				t.Fatalf("negative balance %s", got.Balance)
			}
		})
	}
}

func TestNewAccount_ZeroBalance(t *testing.T) {
	acct := types.NewAccount("bob", "hunter22")
	if !acct.Balance.IsZero() {
		t.Fatalf("balance = %s, want 0", acct.Balance)
	}
}

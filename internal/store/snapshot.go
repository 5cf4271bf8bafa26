package store

import (
	"errors"
	"fmt"

	"ledger/internal/domain"
)

// ErrCorruptSnapshot is returned when stored accounts decode but violate the
// ledger's invariants.
var ErrCorruptSnapshot = errors.New("corrupt accounts snapshot")

// checkAccounts rejects mappings the service could never have produced:
// empty keys or credentials, keys that disagree with the account, and
// balances that are negative or out of scale.
func checkAccounts(accounts map[domain.Username]domain.Account) error {
	for key, acct := range accounts {
		switch {
		case key.Empty() || acct.Password == "":
			return fmt.Errorf("%w: empty username or password", ErrCorruptSnapshot)
		case key != acct.Username:
			return fmt.Errorf("%w: key %q holds account %q", ErrCorruptSnapshot, key, acct.Username)
		case acct.Balance.IsNegative():
			return fmt.Errorf("%w: negative balance for %q", ErrCorruptSnapshot, key)
		case !domain.WithinScale(acct.Balance):
			return fmt.Errorf("%w: balance exponent out of range for %q", ErrCorruptSnapshot, key)
		}
	}
	return nil
}

package interfaces

import domaintypes "ledger/internal/domain/types"

// AccountSnapshotStore persists the complete username to account mapping.
// Every save replaces whatever was stored before.
type AccountSnapshotStore interface {
	// LoadAccounts returns the stored mapping. A store that has never been
	// written returns an empty mapping and a nil error.
	LoadAccounts() (map[domaintypes.Username]domaintypes.Account, error)
	SaveAccounts(accounts map[domaintypes.Username]domaintypes.Account) error
}

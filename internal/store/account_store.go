package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"ledger/internal/crypto"
	"ledger/internal/domain"
)

// AccountsFile is the default file name for the JSON backend.
const AccountsFile = "accounts.json"

// AccountFileStore persists the account mapping as a single JSON file,
// optionally sealed with a passphrase.
type AccountFileStore struct {
	path       string
	passphrase string
	params     ScryptParams
	mu         sync.Mutex
}

// FileOption configures an AccountFileStore.
type FileOption func(*AccountFileStore)

// WithPassphrase seals the file with a key derived from passphrase. An empty
// passphrase leaves the file in plain JSON.
func WithPassphrase(passphrase string) FileOption {
	return func(s *AccountFileStore) { s.passphrase = passphrase }
}

// WithScryptParams overrides the key derivation cost used when sealing.
func WithScryptParams(params ScryptParams) FileOption {
	return func(s *AccountFileStore) { s.params = params }
}

// NewAccountFileStore returns an AccountFileStore writing to path.
func NewAccountFileStore(path string, opts ...FileOption) *AccountFileStore {
	s := &AccountFileStore{path: path, params: DefaultScryptParams()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file the store reads and writes.
func (s *AccountFileStore) Path() string { return s.path }

// LoadAccounts reads the whole mapping. A missing file yields an empty mapping.
func (s *AccountFileStore) LoadAccounts() (map[domain.Username]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	accounts := make(map[domain.Username]domain.Account)
	if b == nil {
		return accounts, nil
	}

	if s.passphrase != "" {
		pt, err := open(s.passphrase, b)
		if err != nil {
			return nil, fmt.Errorf("open accounts: %w", err)
		}
		defer crypto.Wipe(pt)
		b = pt
	}

	if err := json.Unmarshal(b, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	if accounts == nil { // file held JSON null
		accounts = make(map[domain.Username]domain.Account)
	}
	if err := checkAccounts(accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SaveAccounts replaces the file with the given mapping.
func (s *AccountFileStore) SaveAccounts(accounts map[domain.Username]domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	if s.passphrase != "" {
		sealed, err := seal(s.passphrase, raw, s.params)
		crypto.Wipe(raw)
		if err != nil {
			return fmt.Errorf("seal accounts: %w", err)
		}
		raw = sealed
	}

	if err := writeFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}
	return nil
}

// Compile-time assertion that AccountFileStore implements domain.AccountSnapshotStore.
var _ domain.AccountSnapshotStore = (*AccountFileStore)(nil)

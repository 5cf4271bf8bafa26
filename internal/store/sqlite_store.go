package store

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"ledger/internal/domain"
)

// AccountsDatabase is the default file name for the SQLite backend.
const AccountsDatabase = "accounts.db"

// AccountSQLiteStore persists the account mapping in a single-file SQLite
// database. Each save replaces the table contents inside one transaction.
type AccountSQLiteStore struct {
	path  string
	db    *sql.DB
	mu    sync.Mutex // go-sqlite does not support concurrent writes
	ready bool
}

// NewAccountSQLiteStore opens the database at path. The file is not touched
// until the first load or save, so an unreadable database surfaces as a load
// error rather than a construction failure.
func NewAccountSQLiteStore(path string) (*AccountSQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &AccountSQLiteStore{path: path, db: db}, nil
}

// Path returns the database file.
func (s *AccountSQLiteStore) Path() string { return s.path }

func (s *AccountSQLiteStore) ensureSchema() error {
	if s.ready {
		return nil
	}
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			balance  TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	s.ready = true
	return nil
}

// LoadAccounts reads every row into a mapping.
func (s *AccountSQLiteStore) LoadAccounts() (map[domain.Username]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT username, password, balance FROM accounts")
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[domain.Username]domain.Account)
	for rows.Next() {
		var (
			acct    domain.Account
			balance string
		)
		if err := rows.Scan(&acct.Username, &acct.Password, &balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		if acct.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("%w: balance for %q: %v", ErrCorruptSnapshot, acct.Username, err)
		}
		accounts[acct.Username] = acct
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	if err := checkAccounts(accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SaveAccounts replaces the table contents with accounts.
func (s *AccountSQLiteStore) SaveAccounts(accounts map[domain.Username]domain.Account) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSchema(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM accounts"); err != nil {
		return fmt.Errorf("clear accounts: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO accounts (username, password, balance) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for username, acct := range accounts {
		if _, err = stmt.Exec(username.String(), acct.Password, acct.Balance.String()); err != nil {
			return fmt.Errorf("insert %q: %w", username, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *AccountSQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

// Compile-time assertion that AccountSQLiteStore implements domain.AccountSnapshotStore.
var _ domain.AccountSnapshotStore = (*AccountSQLiteStore)(nil)

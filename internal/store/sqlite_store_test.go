package store_test

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"ledger/internal/domain"
	"ledger/internal/store"
)

func newSQLiteStore(t *testing.T, path string) *store.AccountSQLiteStore {
	t.Helper()
	s, err := store.NewAccountSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAccountSQLiteStore_EmptyDatabase(t *testing.T) {
	s := newSQLiteStore(t, filepath.Join(t.TempDir(), store.AccountsDatabase))

	got, err := s.LoadAccounts()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d accounts, want 0", len(got))
	}
}

func TestAccountSQLiteStore_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.AccountsDatabase)

	if err := newSQLiteStore(t, path).SaveAccounts(sampleAccounts()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := newSQLiteStore(t, path).LoadAccounts()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertSameAccounts(t, got, sampleAccounts())
}

func TestAccountSQLiteStore_SaveReplacesContents(t *testing.T) {
	s := newSQLiteStore(t, filepath.Join(t.TempDir(), store.AccountsDatabase))

	if err := s.SaveAccounts(sampleAccounts()); err != nil {
		t.Fatalf("save: %v", err)
	}
	only := map[domain.Username]domain.Account{"carol": domain.NewAccount("carol", "pass123")}
	if err := s.SaveAccounts(only); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadAccounts()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertSameAccounts(t, got, only)
}

func TestAccountSQLiteStore_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.AccountsDatabase)
	if err := os.WriteFile(path, []byte(strings.Repeat("not a sqlite database ", 64)), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := newSQLiteStore(t, path).LoadAccounts(); err == nil {
		t.Fatal("expected load error")
	}
}

func TestAccountSQLiteStore_HugeExponentRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.AccountsDatabase)
	s, err := store.NewAccountSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SaveAccounts(sampleAccounts()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw: %v", err)
	}
	if _, err := db.Exec("UPDATE accounts SET balance = ? WHERE username = ?", "1e1000000000", "alice"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close raw: %v", err)
	}

	_, err = newSQLiteStore(t, path).LoadAccounts()
	if !errors.Is(err, store.ErrCorruptSnapshot) {
		t.Fatalf("err = %v, want ErrCorruptSnapshot", err)
	}
}

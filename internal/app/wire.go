package app

import (
	"fmt"

	"go.uber.org/zap"

	"ledger/internal/crypto"
	"ledger/internal/domain"
	"ledger/internal/services/accounts"
	"ledger/internal/store"
)

// Wire bundles the store, service and logger for the CLI.
type Wire struct {
	Accounts *accounts.Service
	Store    domain.AccountSnapshotStore
	Log      *zap.Logger

	close func() error
}

// NewWire constructs the dependency graph from cfg. log may be nil.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	w := &Wire{Log: log, close: func() error { return nil }}

	switch cfg.Backend {
	case BackendSQLite:
		s, err := store.NewAccountSQLiteStore(cfg.DataPath())
		if err != nil {
			return nil, fmt.Errorf("new sqlite store: %w", err)
		}
		w.Store = s
		w.close = s.Close
	default:
		w.Store = store.NewAccountFileStore(cfg.DataPath(), store.WithPassphrase(cfg.Passphrase))
	}

	var creds domain.CredentialPolicy = crypto.PlaintextPolicy{}
	if cfg.HashPasswords {
		creds = crypto.BcryptPolicy{Cost: cfg.BcryptCost}
	}

	log.Debug("wiring ledger",
		zap.String("backend", cfg.Backend),
		zap.String("path", cfg.DataPath()),
		zap.Bool("sealed", cfg.Passphrase != ""),
		zap.Bool("hash_passwords", cfg.HashPasswords),
		zap.Bool("strict", cfg.Strict),
	)

	w.Accounts = accounts.New(w.Store,
		accounts.WithLogger(log),
		accounts.WithCredentials(creds),
		accounts.WithRollbackOnSaveError(cfg.Strict),
	)
	return w, nil
}

// Close releases the backend. Accounts are already persisted after every
// mutation, so nothing is flushed here.
func (w *Wire) Close() error {
	if err := w.close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	// Sync on a terminal stderr reports EINVAL on some platforms.
	_ = w.Log.Sync()
	return nil
}

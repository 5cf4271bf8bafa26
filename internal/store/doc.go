// Package store provides persistence for the ledger's account mapping.
//
// Every store implements domain.AccountSnapshotStore: the whole mapping is
// written on each save and read back in full on load. All methods are
// concurrency-safe via internal locking.
//
// The package includes:
//   - AccountFileStore, a JSON file written via temp file and rename,
//     optionally sealed with a passphrase (scrypt + ChaCha20-Poly1305)
//   - AccountSQLiteStore, a single-file SQLite database
package store

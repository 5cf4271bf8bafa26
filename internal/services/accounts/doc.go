// Package accounts is the ledger's account store.
//
// Service owns the authoritative username to account mapping. It is loaded
// once from a domain.AccountSnapshotStore at construction and written back
// in full after every mutation that changes it. A single lock is held for
// the whole of each operation, so the resolve, compute and persist steps of
// a mutation are atomic and saves happen in the order mutations were
// applied.
//
// Persistence failures never reach the caller. A failed load starts the
// service empty; a failed save is logged and, unless rollback is enabled,
// the in-memory change is kept.
package accounts

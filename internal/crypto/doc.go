// Package crypto holds the small set of primitives the ledger needs.
//
// Contents
//
//   - Credential policies deciding how passwords are recorded and checked
//     (PlaintextPolicy, BcryptPolicy)
//   - Best-effort memory wiping for derived keys and decrypted buffers (Wipe)
//
// # Notes
//
// PlaintextPolicy keeps the historical behaviour: the password is stored as
// given and compared byte for byte. BcryptPolicy is opt-in and changes what
// is written to disk, so a file written under one policy cannot be logged
// into under the other.
package crypto

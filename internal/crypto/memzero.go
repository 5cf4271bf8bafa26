package crypto

import "runtime"

// Wipe clears derived keys and decrypted snapshot bytes once a load or save
// is done with them. The noinline directive and KeepAlive keep the stores
// from being dropped as dead writes.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		for i := range b {
			b[i] = 0
		}
	}
	runtime.KeepAlive(bufs)
}

package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"ledger/internal/crypto"
)

const (
	// The current supported version of the sealed accounts format stored on disk.
	envelopeFormatVersion = 1

	// Upper bounds on the KDF cost read back from a sealed file. scrypt needs
	// 128*N*r*p bytes, so these cap a single open at 2 GiB.
	maxScryptN  = 1 << 20
	maxScryptRP = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed file has been modified or corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted accounts file")

	// ErrNotSealed is returned when a passphrase is configured but the file on
	// disk is not a sealed envelope.
	ErrNotSealed = errors.New("accounts file is not sealed")
)

// envelope is the on-disk JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// ScryptParams are the cost parameters used when sealing.
type ScryptParams struct {
	N, R, P int
}

// DefaultScryptParams are the tunables for scrypt key derivation.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// seal derives a key from passphrase and seals raw into a JSON envelope.
func seal(passphrase string, raw []byte, params ScryptParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; a fresh salt per seal gives a fresh key
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt[:],
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
}

// open decrypts a JSON envelope using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.V == 0 || len(env.Salt) == 0 {
		return nil, ErrNotSealed
	}
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported accounts file version %d", env.V)
	}
	if err := checkScryptParams(env.N, env.R, env.P); err != nil {
		return nil, err
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// checkScryptParams rejects cost parameters that seal would never write.
func checkScryptParams(n, r, p int) error {
	switch {
	case n <= 1 || n&(n-1) != 0 || n > maxScryptN:
		return fmt.Errorf("%w: scrypt N=%d out of range", ErrCorruptSnapshot, n)
	case r < 1 || p < 1 || r > maxScryptRP || p > maxScryptRP || r*p > maxScryptRP:
		return fmt.Errorf("%w: scrypt r=%d p=%d out of range", ErrCorruptSnapshot, r, p)
	}
	return nil
}

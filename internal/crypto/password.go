package crypto

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ledger/internal/domain"
)

// ErrPasswordTooLong is returned by BcryptPolicy for inputs bcrypt cannot hash.
var ErrPasswordTooLong = errors.New("password longer than 72 bytes")

// PlaintextPolicy records the password verbatim and accepts a login only on
// an exact byte match.
type PlaintextPolicy struct{}

// Record returns password unchanged.
func (PlaintextPolicy) Record(password string) (string, error) { return password, nil }

// Verify reports whether password equals recorded exactly.
func (PlaintextPolicy) Verify(recorded, password string) bool {
	return subtle.ConstantTimeCompare([]byte(recorded), []byte(password)) == 1
}

// BcryptPolicy records a bcrypt hash of the password.
type BcryptPolicy struct {
	// Cost is the bcrypt work factor; zero means bcrypt.DefaultCost.
	Cost int
}

// Record hashes password with the configured cost.
func (p BcryptPolicy) Record(password string) (string, error) {
	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the recorded hash.
func (p BcryptPolicy) Verify(recorded, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(recorded), []byte(password)) == nil
}

// Compile-time assertions that both policies implement domain.CredentialPolicy.
var (
	_ domain.CredentialPolicy = PlaintextPolicy{}
	_ domain.CredentialPolicy = BcryptPolicy{}
)

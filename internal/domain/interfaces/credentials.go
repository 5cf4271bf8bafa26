package interfaces

// CredentialPolicy decides how a password is recorded on an account and how
// a login attempt is checked against the recorded value.
type CredentialPolicy interface {
	Record(password string) (string, error)
	Verify(recorded, password string) bool
}

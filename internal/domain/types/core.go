package types

// Username identifies an account in the ledger. Comparison is exact and
// case-sensitive.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// Empty reports whether the username has no characters.
func (u Username) Empty() bool { return u == "" }

package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"ledger/internal/store"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home          string // data directory, e.g. $HOME/.ledger
	Backend       string // json or sqlite
	Passphrase    string // seals the json backend when set
	HashPasswords bool   // record bcrypt hashes instead of plaintext
	Strict        bool   // roll back in-memory changes when a save fails
	LogLevel      string // debug, info, warn or error
	BcryptCost    int    // zero means bcrypt.DefaultCost
}

// FromEnv loads the optional dotenv files (".env" when none are given) and
// reads LEDGER_* variables over the defaults.
func FromEnv(files ...string) Config {
	// A missing .env is normal; the process environment still applies.
	_ = godotenv.Load(files...)

	return Config{
		Home:          getEnv("LEDGER_HOME", ""),
		Backend:       getEnv("LEDGER_BACKEND", BackendJSON),
		Passphrase:    getEnv("LEDGER_PASSPHRASE", ""),
		HashPasswords: getBool("LEDGER_HASH_PASSWORDS", false),
		Strict:        getBool("LEDGER_STRICT", false),
		LogLevel:      getEnv("LEDGER_LOG_LEVEL", "warn"),
	}
}

// Validate reports settings that cannot be wired.
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory not set")
	}
	switch c.Backend {
	case BackendJSON:
	case BackendSQLite:
		if c.Passphrase != "" {
			return fmt.Errorf("passphrase is only supported by the %s backend", BackendJSON)
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendJSON, BackendSQLite)
	}
	return nil
}

// DataPath is the persisted file for the configured backend.
func (c Config) DataPath() string {
	if c.Backend == BackendSQLite {
		return filepath.Join(c.Home, store.AccountsDatabase)
	}
	return filepath.Join(c.Home, store.AccountsFile)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

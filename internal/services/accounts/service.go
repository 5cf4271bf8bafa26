package accounts

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ledger/internal/crypto"
	"ledger/internal/domain"
)

// Service validates and applies account operations and persists the
// resulting mapping.
type Service struct {
	store    domain.AccountSnapshotStore
	creds    domain.CredentialPolicy
	log      *zap.Logger
	rollback bool

	mu       sync.Mutex
	accounts map[domain.Username]domain.Account
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithCredentials sets how passwords are recorded and checked. The default
// is crypto.PlaintextPolicy.
func WithCredentials(policy domain.CredentialPolicy) Option {
	return func(s *Service) { s.creds = policy }
}

// WithRollbackOnSaveError makes a failed save undo the in-memory change and
// report the operation as rejected.
func WithRollbackOnSaveError(enabled bool) Option {
	return func(s *Service) { s.rollback = enabled }
}

// New returns a Service holding the mapping loaded from snapshots.
func New(snapshots domain.AccountSnapshotStore, opts ...Option) *Service {
	s := &Service{
		store: snapshots,
		creds: crypto.PlaintextPolicy{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("accounts")
	s.accounts = s.load()
	return s
}

func (s *Service) load() map[domain.Username]domain.Account {
	accounts, err := s.store.LoadAccounts()
	if err != nil {
		s.log.Warn("load accounts failed, starting empty", zap.Error(err))
		return make(map[domain.Username]domain.Account)
	}
	if accounts == nil {
		accounts = make(map[domain.Username]domain.Account)
	}
	s.log.Debug("accounts loaded", zap.Int("count", len(accounts)))
	return accounts
}

// CreateAccount adds a zero-balance account. It returns false when either
// argument is empty, the username is taken, or the password cannot be
// recorded.
func (s *Service) CreateAccount(username domain.Username, password string) bool {
	if username.Empty() || password == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.With(zap.Stringer("username", username))

	if _, exists := s.accounts[username]; exists {
		log.Debug("create account rejected: username taken")
		return false
	}
	recorded, err := s.creds.Record(password)
	if err != nil {
		log.Debug("create account rejected", zap.Error(err))
		return false
	}

	if !s.commit(domain.NewAccount(username, recorded), domain.Account{}, false) {
		return false
	}
	log.Info("account created")
	return true
}

// Login returns the account when username exists and password matches.
func (s *Service) Login(username domain.Username, password string) (domain.Account, bool) {
	if username.Empty() || password == "" {
		return domain.Account{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[username]
	if !ok || !s.creds.Verify(acct.Password, password) {
		s.log.Debug("login rejected", zap.Stringer("username", username))
		return domain.Account{}, false
	}
	return acct, true
}

// Deposit adds amount to the account's balance. Empty or unknown usernames
// and non-positive amounts are ignored.
func (s *Service) Deposit(username domain.Username, amount decimal.Decimal) {
	if username.Empty() || !amount.IsPositive() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[username]
	if !ok {
		s.log.Debug("deposit ignored: unknown account", zap.Stringer("username", username))
		return
	}
	if s.commit(acct.Deposit(amount), acct, true) {
		s.log.Debug("deposit applied", zap.Stringer("username", username), zap.Stringer("amount", amount))
	}
}

// Withdraw subtracts amount from the account's balance. It returns false,
// leaving the balance untouched, for empty or unknown usernames,
// non-positive amounts and insufficient funds.
func (s *Service) Withdraw(username domain.Username, amount decimal.Decimal) bool {
	if username.Empty() || !amount.IsPositive() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[username]
	if !ok {
		return false
	}
	updated := acct.Withdraw(amount)
	if updated.Balance.Equal(acct.Balance) {
		s.log.Debug("withdraw rejected: insufficient funds",
			zap.Stringer("username", username), zap.Stringer("amount", amount))
		return false
	}
	if !s.commit(updated, acct, true) {
		return false
	}
	s.log.Debug("withdraw applied", zap.Stringer("username", username), zap.Stringer("amount", amount))
	return true
}

// CheckBalance returns the account's balance, or zero for empty and unknown
// usernames.
func (s *Service) CheckBalance(username domain.Username) decimal.Decimal {
	if username.Empty() {
		return decimal.Zero
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if acct, ok := s.accounts[username]; ok {
		return acct.Balance
	}
	return decimal.Zero
}

// Len returns the number of accounts held.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.accounts)
}

// commit stores acct in the mapping and saves the whole mapping. prev and
// existed describe the entry being replaced so rollback can restore it.
// Callers must hold s.mu.
func (s *Service) commit(acct, prev domain.Account, existed bool) bool {
	s.accounts[acct.Username] = acct

	err := s.store.SaveAccounts(s.accounts)
	if err == nil {
		return true
	}

	log := s.log.With(zap.Stringer("username", acct.Username), zap.Error(err))
	if !s.rollback {
		log.Error("persist accounts failed, keeping in-memory change")
		return true
	}

	if existed {
		s.accounts[acct.Username] = prev
	} else {
		delete(s.accounts, acct.Username)
	}
	log.Error("persist accounts failed, change rolled back")
	return false
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)

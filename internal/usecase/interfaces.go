package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
)

// AccountRepository defines data access for accounts. Every read and
// write is scoped to an owning user; a row owned by someone else is
// indistinguishable from a missing one.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id, userID string) (*domain.Account, error)
	// GetByIDsForUpdate locks the accounts FOR UPDATE inside tx.
	// Callers pass IDs in sorted order to keep lock order stable.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string, userID string) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id, userID string) error
	List(ctx context.Context, userID string) ([]*domain.Account, error)
	// ApplyBalanceDelta atomically increments the (account, currency)
	// balance entry inside tx, creating a zero entry first if none
	// exists. Returns domain.ErrAccountNotFound if the account row is
	// gone.
	ApplyBalanceDelta(ctx context.Context, tx Transaction, accountID, currency string, delta decimal.Decimal, updatedAt time.Time) error
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	UserID    string
	AccountID string
	Type      domain.TransactionType
	Category  string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id, userID string) (*domain.Transaction, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id, userID string) (*domain.Transaction, error)
	Delete(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, int64, error)
	// ListByDateRange returns the user's transactions with economic
	// date in [start, end], optionally restricted to those touching
	// accountID (as source or destination) when it is non-empty.
	ListByDateRange(ctx context.Context, userID, accountID string, start, end time.Time) ([]*domain.Transaction, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs a whole atomic unit when the storage layer reports a
// retryable conflict. Individual balance writes are never retried.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// RateLimitStore counts requests per key in a shared store so limits
// hold across process instances.
type RateLimitStore interface {
	// Allow increments the counter for key within the window and
	// reports whether the request is under limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

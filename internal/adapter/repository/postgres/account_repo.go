package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository. Balances
// live in their own table, one row per (account, currency), so delta
// application is a single atomic upsert.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts an account together with its initial balance rows.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO accounts (id, user_id, name, description, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		account.Description,
		string(account.Type),
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		return err
	}

	for _, b := range account.Balances {
		_, err = tx.Exec(ctx,
			`INSERT INTO account_balances (account_id, currency, amount) VALUES ($1, $2, $3)`,
			account.ID, b.Currency, decimalToNumeric(b.Amount),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves an account owned by userID.
func (r *AccountRepository) GetByID(ctx context.Context, id, userID string) (*domain.Account, error) {
	query := `
		SELECT id, user_id, name, description, type, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND user_id = $2
	`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}

	balances, err := r.loadBalances(ctx, r.pool, []string{id})
	if err != nil {
		return nil, err
	}
	account.Balances = balances[id]

	return account, nil
}

// GetByIDsForUpdate locks the accounts FOR UPDATE inside tx. IDs are
// expected in sorted order; the query preserves that order for the
// row locks.
func (r *AccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string, userID string) ([]*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT id, user_id, name, description, type, created_at, updated_at
		FROM accounts
		WHERE id = ANY($1::text[]) AND user_id = $2
		ORDER BY id
		FOR UPDATE
	`

	rows, err := pgxTx.Query(ctx, query, ids, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	balances, err := r.loadBalances(ctx, pgxTx, ids)
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		account.Balances = balances[account.ID]
	}

	return accounts, nil
}

// Update edits name, description and type.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3, description = $4, type = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		account.Description,
		string(account.Type),
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account; its balance rows cascade. Transactions
// referencing the account are left untouched.
func (r *AccountRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// List returns the user's accounts, newest first.
func (r *AccountRepository) List(ctx context.Context, userID string) ([]*domain.Account, error) {
	query := `
		SELECT id, user_id, name, description, type, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		accounts []*domain.Account
		ids      []string
	)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
		ids = append(ids, account.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return accounts, nil
	}

	balances, err := r.loadBalances(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		account.Balances = balances[account.ID]
	}

	return accounts, nil
}

// ApplyBalanceDelta atomically increments one (account, currency)
// balance entry inside tx, creating a zero entry first when none
// exists. A vanished account row yields domain.ErrAccountNotFound so
// delete-reversal can treat the leg as a no-op.
func (r *AccountRepository) ApplyBalanceDelta(ctx context.Context, tx usecase.Transaction, accountID, currency string, delta decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE accounts SET updated_at = $2 WHERE id = $1`,
		accountID, timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	query := `
		INSERT INTO account_balances (account_id, currency, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, currency)
		DO UPDATE SET amount = account_balances.amount + EXCLUDED.amount
	`

	_, err = pgxTx.Exec(ctx, query, accountID, currency, decimalToNumeric(delta))
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		account     domain.Account
		accountType string
		description pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&description,
		&accountType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	account.Description = description.String
	account.Type = domain.AccountType(accountType)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *AccountRepository) loadBalances(ctx context.Context, q querier, accountIDs []string) (map[string][]domain.Balance, error) {
	query := `
		SELECT account_id, currency, amount
		FROM account_balances
		WHERE account_id = ANY($1::text[])
		ORDER BY account_id, currency
	`

	rows, err := q.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make(map[string][]domain.Balance)
	for rows.Next() {
		var (
			accountID string
			currency  string
			amount    pgtype.Numeric
		)
		if err := rows.Scan(&accountID, &currency, &amount); err != nil {
			return nil, err
		}
		balances[accountID] = append(balances[accountID], domain.Balance{
			Currency: currency,
			Amount:   numericToDecimal(amount),
		})
	}

	return balances, rows.Err()
}

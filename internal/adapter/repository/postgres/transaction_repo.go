package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/usecase"
)

const transactionColumns = `id, user_id, type, amount, currency, category, description,
		account_id, to_account_id,
		transfer_from_currency, transfer_from_amount, transfer_to_currency, transfer_to_amount,
		date, created_at, updated_at`

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a transaction record inside tx.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	var (
		fromCurrency, toCurrency pgtype.Text
		fromAmount, toAmount     pgtype.Numeric
	)
	if td := txn.TransferDetails; td != nil {
		fromCurrency = textOrNull(td.FromCurrency)
		toCurrency = textOrNull(td.ToCurrency)
		fromAmount = decimalToNumeric(td.FromAmount)
		toAmount = decimalToNumeric(td.ToAmount)
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := pgxTx.Exec(ctx, query,
		txn.ID,
		txn.UserID,
		string(txn.Type),
		decimalToNumeric(txn.Amount),
		txn.Currency,
		txn.Category,
		txn.Description,
		txn.AccountID,
		textOrNull(txn.ToAccountID),
		fromCurrency,
		fromAmount,
		toCurrency,
		toAmount,
		timeToPgTimestamptz(txn.Date),
		timeToPgTimestamptz(txn.CreatedAt),
		timeToPgTimestamptz(txn.UpdatedAt),
	)

	return err
}

// GetByID retrieves a transaction owned by userID.
func (r *TransactionRepository) GetByID(ctx context.Context, id, userID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`
	return scanTransaction(r.pool.QueryRow(ctx, query, id, userID))
}

// GetByIDForUpdate retrieves a transaction with a FOR UPDATE lock so a
// concurrent delete of the same record serializes behind it.
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id, userID string) (*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return scanTransaction(pgxTx.QueryRow(ctx, query, id, userID))
}

// Delete removes a transaction record inside tx.
func (r *TransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// List returns transactions matching filter, newest economic date
// first, along with the total match count.
func (r *TransactionRepository) List(ctx context.Context, filter usecase.TransactionFilter) ([]*domain.Transaction, int64, error) {
	where := `WHERE user_id = $1`
	args := []any{filter.UserID}

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		where += fmt.Sprintf(` AND (account_id = $%d OR to_account_id = $%d)`, len(args), len(args))
	}

	if filter.Type != "" {
		args = append(args, string(filter.Type))
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	if filter.From != nil {
		args = append(args, timeToPgTimestamptz(*filter.From))
		where += fmt.Sprintf(` AND date >= $%d`, len(args))
	}

	if filter.To != nil {
		args = append(args, timeToPgTimestamptz(*filter.To))
		where += fmt.Sprintf(` AND date <= $%d`, len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM transactions %s ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

// ListByDateRange returns the user's transactions with economic date
// in [start, end], ascending, optionally restricted to one account.
func (r *TransactionRepository) ListByDateRange(ctx context.Context, userID, accountID string, start, end time.Time) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		  AND date >= $2 AND date <= $3
		  AND ($4 = '' OR account_id = $4 OR to_account_id = $4)
		ORDER BY date ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, timeToPgTimestamptz(start), timeToPgTimestamptz(end), accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		txn          domain.Transaction
		txnType      string
		amount       pgtype.Numeric
		toAccountID  pgtype.Text
		fromCurrency pgtype.Text
		fromAmount   pgtype.Numeric
		toCurrency   pgtype.Text
		toAmount     pgtype.Numeric
		date         pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&txnType,
		&amount,
		&txn.Currency,
		&txn.Category,
		&txn.Description,
		&txn.AccountID,
		&toAccountID,
		&fromCurrency,
		&fromAmount,
		&toCurrency,
		&toAmount,
		&date,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	txn.Type = domain.TransactionType(txnType)
	txn.Amount = numericToDecimal(amount)
	txn.ToAccountID = toAccountID.String
	txn.Date = date.Time
	txn.CreatedAt = createdAt.Time
	txn.UpdatedAt = updatedAt.Time

	if fromCurrency.Valid && toCurrency.Valid {
		txn.TransferDetails = &domain.TransferDetails{
			FromCurrency: fromCurrency.String,
			FromAmount:   numericToDecimal(fromAmount),
			ToCurrency:   toCurrency.String,
			ToAmount:     numericToDecimal(toAmount),
		}
	}

	return &txn, nil
}

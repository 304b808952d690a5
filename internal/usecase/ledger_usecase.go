package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/infrastructure/metrics"
)

// LedgerUseCase is the only code path allowed to change account
// balances, and it always does so in lockstep with writing or removing
// the corresponding transaction record. Both sides commit as a single
// storage transaction; on any failure the whole unit rolls back.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// CreateTransactionInput represents a transaction intent.
type CreateTransactionInput struct {
	UserID          string
	Type            domain.TransactionType
	Amount          decimal.Decimal
	Currency        string
	Category        string
	Description     string
	AccountID       string
	ToAccountID     string
	TransferDetails *domain.TransferDetails
	Date            *time.Time
}

func (in *CreateTransactionInput) validate() error {
	if !in.Type.IsValid() {
		return domain.NewValidationError("type", "must be income, expense or transfer")
	}

	if err := domain.ValidateAmount("amount", in.Amount); err != nil {
		return err
	}

	if err := domain.ValidateCurrency("currency", in.Currency); err != nil {
		return err
	}

	if in.Category == "" {
		return domain.NewValidationError("category", "cannot be empty")
	}

	if in.Description == "" {
		return domain.NewValidationError("description", "cannot be empty")
	}

	if in.AccountID == "" {
		switch in.Type {
		case domain.TransactionTypeIncome:
			return domain.NewValidationError("accountId", "income requires a destination account")
		case domain.TransactionTypeExpense:
			return domain.NewValidationError("accountId", "expense requires a source account")
		default:
			return domain.NewValidationError("accountId", "transfer requires a source account")
		}
	}

	if in.Type == domain.TransactionTypeTransfer {
		if in.ToAccountID == "" {
			return domain.NewValidationError("toAccountId", "transfer requires a destination account")
		}
		if in.ToAccountID == in.AccountID {
			return domain.NewValidationError("toAccountId", "source and destination must differ")
		}
	} else if in.ToAccountID != "" {
		return domain.NewValidationError("toAccountId", "only transfers have a destination account")
	}

	if td := in.TransferDetails; td != nil {
		if in.Type != domain.TransactionTypeTransfer {
			return domain.NewValidationError("transferDetails", "only valid on transfers")
		}
		if err := domain.ValidateCurrency("transferDetails.fromCurrency", td.FromCurrency); err != nil {
			return err
		}
		if err := domain.ValidateCurrency("transferDetails.toCurrency", td.ToCurrency); err != nil {
			return err
		}
		if err := domain.ValidateAmount("transferDetails.fromAmount", td.FromAmount); err != nil {
			return err
		}
		if err := domain.ValidateAmount("transferDetails.toAmount", td.ToAmount); err != nil {
			return err
		}
	}

	return nil
}

// CreateTransaction validates the intent, writes the transaction
// record and applies its balance deltas as one atomic unit. Only
// whole-unit retries happen on storage conflicts; a committed unit is
// never re-applied.
func (uc *LedgerUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := input.validate(); err != nil {
		if uc.metrics != nil {
			uc.metrics.TransactionErrors.WithLabelValues(errorLabel(err)).Inc()
		}
		return nil, err
	}

	now := time.Now().UTC()

	date := now
	if input.Date != nil {
		date = input.Date.UTC()
	}

	txn := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		UserID:          input.UserID,
		Type:            input.Type,
		Amount:          input.Amount,
		Currency:        input.Currency,
		Category:        input.Category,
		Description:     input.Description,
		AccountID:       input.AccountID,
		ToAccountID:     input.ToAccountID,
		TransferDetails: input.TransferDetails,
		Date:            date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.retry(ctx, func() error {
		return uc.applyCreate(ctx, txn, now)
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransactionErrors.WithLabelValues(errorLabel(err)).Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.WithLabelValues(string(txn.Type)).Inc()
		uc.metrics.LedgerDuration.Observe(time.Since(now).Seconds())
	}

	return txn, nil
}

func (uc *LedgerUseCase) applyCreate(ctx context.Context, txn *domain.Transaction, now time.Time) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock the implicated accounts in sorted order so concurrent
	// mutations of the same accounts serialize without deadlocking.
	accountIDs := txn.AccountIDs()
	sort.Strings(accountIDs)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, accountIDs, txn.UserID)
	if err != nil {
		return err
	}

	if len(accounts) != len(accountIDs) {
		return domain.ErrAccountNotFound
	}

	if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
		return err
	}

	for _, leg := range txn.Legs() {
		if err := uc.accountRepo.ApplyBalanceDelta(ctx, tx, leg.AccountID, leg.Currency, leg.Amount, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConsistencyFailure, err)
	}

	return nil
}

// DeleteTransaction removes a transaction and reverses its balance
// effect as one atomic unit. Reversal is computed from the stored
// record itself, never re-derived from current account state. A leg
// whose account was deleted independently is skipped: the record is
// still removed and no error is raised.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id, userID string) error {
	start := time.Now()

	err := uc.retry(ctx, func() error {
		return uc.applyDelete(ctx, id, userID)
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransactionErrors.WithLabelValues(errorLabel(err)).Inc()
		}
		return err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsDeleted.Inc()
		uc.metrics.LedgerDuration.Observe(time.Since(start).Seconds())
	}

	return nil
}

func (uc *LedgerUseCase) applyDelete(ctx context.Context, id, userID string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	txn, err := uc.txnRepo.GetByIDForUpdate(ctx, tx, id, userID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	// Reverse in sorted account order so concurrent creates and
	// deletes touching the same accounts take row locks in the same
	// sequence and cannot deadlock each other.
	legs := txn.ReversalLegs()
	sort.Slice(legs, func(i, j int) bool { return legs[i].AccountID < legs[j].AccountID })

	for _, leg := range legs {
		err := uc.accountRepo.ApplyBalanceDelta(ctx, tx, leg.AccountID, leg.Currency, leg.Amount, now)
		if errors.Is(err, domain.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return err
		}
	}

	if err := uc.txnRepo.Delete(ctx, tx, txn.ID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConsistencyFailure, err)
	}

	return nil
}

// GetTransaction retrieves one transaction owned by userID.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id, userID string) (*domain.Transaction, error) {
	return uc.txnRepo.GetByID(ctx, id, userID)
}

// ListTransactions lists transactions matching filter, newest economic
// date first, and returns the total match count for pagination.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, int64, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.txnRepo.List(ctx, filter)
}

func errorLabel(err error) string {
	switch {
	case domain.IsValidation(err):
		return "validation"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "transaction_not_found"
	case errors.Is(err, domain.ErrConsistencyFailure):
		return "consistency_failure"
	default:
		return "internal"
	}
}

func (uc *LedgerUseCase) retry(ctx context.Context, op func() error) error {
	if uc.retrier == nil {
		return op()
	}
	return uc.retrier.Retry(ctx, op)
}

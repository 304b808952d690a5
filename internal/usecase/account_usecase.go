package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
)

// AccountUseCase handles account CRUD. Direct edits only touch name,
// type and description; balances change exclusively through the
// ledger use case.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
	}
}

// InitialBalance is one starting (currency, amount) pair.
type InitialBalance struct {
	Currency string
	Amount   decimal.Decimal
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	UserID      string
	Name        string
	Description string
	Type        domain.AccountType
	Balances    []InitialBalance
}

// CreateAccount creates an account with its initial balance set,
// possibly spanning multiple currencies.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domain.NewValidationError("type", "must be bank, crypto_wallet, crypto_card or other")
	}

	seen := map[string]bool{}
	balances := make([]domain.Balance, 0, len(input.Balances))
	for _, b := range input.Balances {
		if err := domain.ValidateCurrency("balances.currency", b.Currency); err != nil {
			return nil, err
		}
		if seen[b.Currency] {
			return nil, domain.NewValidationError("balances", "duplicate currency "+b.Currency)
		}
		seen[b.Currency] = true
		balances = append(balances, domain.Balance{Currency: b.Currency, Amount: b.Amount})
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:          uc.idGen.Generate(),
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Balances:    balances,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves one account owned by userID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id, userID string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id, userID)
}

// ListAccounts lists the user's accounts, newest first.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, userID string) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx, userID)
}

// UpdateAccountInput represents input for editing an account.
type UpdateAccountInput struct {
	UserID      string
	ID          string
	Name        string
	Description string
	Type        domain.AccountType
}

// UpdateAccount edits name, type and description. Balances are left
// untouched regardless of input.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domain.NewValidationError("type", "must be bank, crypto_wallet, crypto_card or other")
	}

	account, err := uc.accountRepo.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.Description = input.Description
	account.Type = input.Type
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteAccount removes an account. Deletion does not cascade to
// transactions: records referencing the account stay, and later
// deleting one of them skips the reversal leg for the missing account.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id, userID string) error {
	return uc.accountRepo.Delete(ctx, id, userID)
}

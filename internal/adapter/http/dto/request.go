package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/usecase"
)

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// InitialBalance represents one currency of an account's opening
// balance set.
type InitialBalance struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Type        string           `json:"type"`
	Balances    []InitialBalance `json:"balances,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput(userID string) usecase.CreateAccountInput {
	balances := make([]usecase.InitialBalance, len(r.Balances))
	for i, b := range r.Balances {
		balances[i] = usecase.InitialBalance{
			Currency: b.Currency,
			Amount:   b.Amount,
		}
	}
	return usecase.CreateAccountInput{
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		Type:        domain.AccountType(r.Type),
		Balances:    balances,
	}
}

// UpdateAccountRequest represents a request to edit an account.
// Balances cannot be edited directly; they change only through
// transactions.
type UpdateAccountRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput(id, userID string) usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		UserID:      userID,
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Type:        domain.AccountType(r.Type),
	}
}

// TransferDetails carries the per-currency amounts of a cross-currency
// transfer.
type TransferDetails struct {
	FromCurrency string          `json:"fromCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToCurrency   string          `json:"toCurrency"`
	ToAmount     decimal.Decimal `json:"toAmount"`
}

// CreateTransactionRequest represents a request to record a
// transaction.
type CreateTransactionRequest struct {
	Type            string           `json:"type"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Category        string           `json:"category"`
	Description     string           `json:"description,omitempty"`
	AccountID       string           `json:"accountId"`
	ToAccountID     string           `json:"toAccountId,omitempty"`
	TransferDetails *TransferDetails `json:"transferDetails,omitempty"`
	Date            *time.Time       `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput(userID string) usecase.CreateTransactionInput {
	input := usecase.CreateTransactionInput{
		UserID:      userID,
		Type:        domain.TransactionType(r.Type),
		Amount:      r.Amount,
		Currency:    r.Currency,
		Category:    r.Category,
		Description: r.Description,
		AccountID:   r.AccountID,
		ToAccountID: r.ToAccountID,
		Date:        r.Date,
	}

	if r.TransferDetails != nil {
		input.TransferDetails = &domain.TransferDetails{
			FromCurrency: r.TransferDetails.FromCurrency,
			FromAmount:   r.TransferDetails.FromAmount,
			ToCurrency:   r.TransferDetails.ToCurrency,
			ToAmount:     r.TransferDetails.ToAmount,
		}
	}

	return input
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse represents a successful authentication.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// BalanceResponse is one currency of an account's balance set.
type BalanceResponse struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type"`
	Balances    []BalanceResponse `json:"balances"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	balances := make([]BalanceResponse, len(a.Balances))
	for i, b := range a.Balances {
		balances[i] = BalanceResponse{Currency: b.Currency, Amount: b.Amount}
	}
	return &AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Type:        string(a.Type),
		Balances:    balances,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Category        string           `json:"category"`
	Description     string           `json:"description,omitempty"`
	AccountID       string           `json:"accountId"`
	ToAccountID     string           `json:"toAccountId,omitempty"`
	TransferDetails *TransferDetails `json:"transferDetails,omitempty"`
	Date            time.Time        `json:"date"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Currency:    t.Currency,
		Category:    t.Category,
		Description: t.Description,
		AccountID:   t.AccountID,
		ToAccountID: t.ToAccountID,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if td := t.TransferDetails; td != nil {
		resp.TransferDetails = &TransferDetails{
			FromCurrency: td.FromCurrency,
			FromAmount:   td.FromAmount,
			ToCurrency:   td.ToCurrency,
			ToAmount:     td.ToAmount,
		}
	}

	return resp
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// PaginationResponse describes the page of a listing.
type PaginationResponse struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse     `json:"pagination"`
}

// TimeSeriesEntryResponse is one (bucket, currency) point.
type TimeSeriesEntryResponse struct {
	Time     string          `json:"time"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// TimeSeriesResponse holds both series of an insights window.
type TimeSeriesResponse struct {
	ByType     map[string][]TimeSeriesEntryResponse `json:"byType"`
	ByCategory map[string][]TimeSeriesEntryResponse `json:"byCategory"`
}

// CategorySpendingResponse is the expense drill-down for one category.
type CategorySpendingResponse struct {
	Summary      map[string]decimal.Decimal `json:"summary"`
	Transactions []*TransactionResponse     `json:"transactions"`
}

// DateRangeResponse is the resolved insights window.
type DateRangeResponse struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	GroupBy string    `json:"groupBy"`
}

// InsightsResponse represents the full insights aggregate.
type InsightsResponse struct {
	TotalBalance     map[string]decimal.Decimal            `json:"totalBalance"`
	Income           map[string]decimal.Decimal            `json:"income"`
	Expense          map[string]decimal.Decimal            `json:"expense"`
	Transfer         map[string]decimal.Decimal            `json:"transfer"`
	CategorySpending map[string]*CategorySpendingResponse  `json:"categorySpending"`
	AccountBalances  map[string]map[string]decimal.Decimal `json:"accountBalances"`
	Accounts         []*AccountResponse                    `json:"accounts"`
	TimeSeries       TimeSeriesResponse                    `json:"timeSeries"`
	DateRange        DateRangeResponse                     `json:"dateRange"`
	TransactionCount int                                   `json:"transactionCount"`
}

// InsightsFromDomain converts the domain insights aggregate to a
// response.
func InsightsFromDomain(in *domain.Insights) *InsightsResponse {
	categories := make(map[string]*CategorySpendingResponse, len(in.CategorySpending))
	for name, cs := range in.CategorySpending {
		categories[name] = &CategorySpendingResponse{
			Summary:      cs.Summary,
			Transactions: TransactionsFromDomain(cs.Transactions),
		}
	}

	accountBalances := make(map[string]map[string]decimal.Decimal, len(in.AccountBalances))
	for id, totals := range in.AccountBalances {
		accountBalances[id] = totals
	}

	byType := make(map[string][]TimeSeriesEntryResponse, len(in.TimeSeries.ByType))
	for kind, entries := range in.TimeSeries.ByType {
		byType[string(kind)] = seriesEntries(entries)
	}

	byCategory := make(map[string][]TimeSeriesEntryResponse, len(in.TimeSeries.ByCategory))
	for name, entries := range in.TimeSeries.ByCategory {
		byCategory[name] = seriesEntries(entries)
	}

	return &InsightsResponse{
		TotalBalance:     in.TotalBalance,
		Income:           in.Income,
		Expense:          in.Expense,
		Transfer:         in.Transfer,
		CategorySpending: categories,
		AccountBalances:  accountBalances,
		Accounts:         AccountsFromDomain(in.Accounts),
		TimeSeries: TimeSeriesResponse{
			ByType:     byType,
			ByCategory: byCategory,
		},
		DateRange: DateRangeResponse{
			Start:   in.DateRange.Start,
			End:     in.DateRange.End,
			GroupBy: string(in.DateRange.GroupBy),
		},
		TransactionCount: in.TransactionCount,
	}
}

func seriesEntries(entries []domain.TimeSeriesEntry) []TimeSeriesEntryResponse {
	result := make([]TimeSeriesEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = TimeSeriesEntryResponse{
			Time:     e.Time,
			Amount:   e.Amount,
			Currency: e.Currency,
		}
	}
	return result
}

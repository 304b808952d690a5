package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account. Informational only; it never
// affects balance math.
type AccountType string

const (
	AccountTypeBank         AccountType = "bank"
	AccountTypeCryptoWallet AccountType = "crypto_wallet"
	AccountTypeCryptoCard   AccountType = "crypto_card"
	AccountTypeOther        AccountType = "other"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeBank, AccountTypeCryptoWallet, AccountTypeCryptoCard, AccountTypeOther:
		return true
	}
	return false
}

// Balance is a single (currency, amount) entry on an account.
// An account holds at most one entry per currency; zero-amount entries
// are kept, not pruned.
type Balance struct {
	Currency string
	Amount   decimal.Decimal
}

// Account is a named financial container owned by one user, holding a
// set of per-currency balances. Overdrafts are allowed: amounts may go
// negative.
type Account struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Type        AccountType
	Balances    []Balance
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceFor returns the amount held in currency, or zero if the
// account has no entry for it.
func (a *Account) BalanceFor(currency string) decimal.Decimal {
	for _, b := range a.Balances {
		if b.Currency == currency {
			return b.Amount
		}
	}
	return decimal.Zero
}

// ApplyDelta adds delta to the account's entry for currency, creating
// a zero entry first if none exists.
func (a *Account) ApplyDelta(currency string, delta decimal.Decimal) {
	for i, b := range a.Balances {
		if b.Currency == currency {
			a.Balances[i].Amount = b.Amount.Add(delta)
			return
		}
	}
	a.Balances = append(a.Balances, Balance{Currency: currency, Amount: delta})
}

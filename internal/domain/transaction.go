package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of ledger event.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// TransferDetails carries the two legs of a transfer independently, so
// a transfer can move value between accounts denominated in different
// currencies. The pair of amounts encodes a caller-supplied exchange
// rate; the ledger never validates or computes the rate itself.
type TransferDetails struct {
	FromCurrency string
	FromAmount   decimal.Decimal
	ToCurrency   string
	ToAmount     decimal.Decimal
}

// Transaction is one income/expense/transfer event. Records are never
// edited in place: the only lifecycle is create then delete.
type Transaction struct {
	ID              string
	UserID          string
	Type            TransactionType
	Amount          decimal.Decimal
	Currency        string
	Category        string
	Description     string
	AccountID       string
	ToAccountID     string
	TransferDetails *TransferDetails
	Date            time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BalanceDelta is the signed balance change a transaction implies for
// one (account, currency) pair.
type BalanceDelta struct {
	AccountID string
	Currency  string
	Amount    decimal.Decimal
}

// transferLegs resolves the authoritative leg amounts for a transfer.
// A stored TransferDetails always wins; without one the transfer is
// treated as same-currency, same-amount on both sides. Create and
// Delete both derive their deltas through here, so the two can never
// disagree on which fields are authoritative.
func (t *Transaction) transferLegs() TransferDetails {
	if t.TransferDetails != nil {
		return *t.TransferDetails
	}
	return TransferDetails{
		FromCurrency: t.Currency,
		FromAmount:   t.Amount,
		ToCurrency:   t.Currency,
		ToAmount:     t.Amount,
	}
}

// Legs returns the balance deltas applying this transaction implies.
// Expense subtracts from the source account, income adds to the
// destination, and a transfer does both with per-leg currencies.
func (t *Transaction) Legs() []BalanceDelta {
	switch t.Type {
	case TransactionTypeExpense:
		return []BalanceDelta{{
			AccountID: t.AccountID,
			Currency:  t.Currency,
			Amount:    t.Amount.Neg(),
		}}
	case TransactionTypeIncome:
		return []BalanceDelta{{
			AccountID: t.AccountID,
			Currency:  t.Currency,
			Amount:    t.Amount,
		}}
	case TransactionTypeTransfer:
		legs := t.transferLegs()
		return []BalanceDelta{
			{
				AccountID: t.AccountID,
				Currency:  legs.FromCurrency,
				Amount:    legs.FromAmount.Neg(),
			},
			{
				AccountID: t.ToAccountID,
				Currency:  legs.ToCurrency,
				Amount:    legs.ToAmount,
			},
		}
	}
	return nil
}

// ReversalLegs returns the exact inverse of Legs, computed from the
// transaction's own stored fields. Deleting a transaction applies
// these, restoring every touched balance to its pre-create value.
func (t *Transaction) ReversalLegs() []BalanceDelta {
	legs := t.Legs()
	reversed := make([]BalanceDelta, len(legs))
	for i, leg := range legs {
		reversed[i] = BalanceDelta{
			AccountID: leg.AccountID,
			Currency:  leg.Currency,
			Amount:    leg.Amount.Neg(),
		}
	}
	return reversed
}

// AccountIDs returns the distinct accounts this transaction touches.
func (t *Transaction) AccountIDs() []string {
	ids := []string{t.AccountID}
	if t.ToAccountID != "" && t.ToAccountID != t.AccountID {
		ids = append(ids, t.ToAccountID)
	}
	return ids
}

// Touches reports whether the transaction references accountID as
// either source or destination.
func (t *Transaction) Touches(accountID string) bool {
	return t.AccountID == accountID || t.ToAccountID == accountID
}

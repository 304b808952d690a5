package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the time-series bucket size, chosen from the span of
// the requested window.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// CurrencyTotals maps currency code to a summed amount.
type CurrencyTotals map[string]decimal.Decimal

// Add accumulates amount into the entry for currency.
func (t CurrencyTotals) Add(currency string, amount decimal.Decimal) {
	t[currency] = t[currency].Add(amount)
}

// CategorySpending is the expense drill-down for one category: the
// per-currency sums plus the transactions that contributed to them.
type CategorySpending struct {
	Summary      CurrencyTotals
	Transactions []*Transaction
}

// TimeSeriesEntry is one (bucket, currency) point of a series.
type TimeSeriesEntry struct {
	Time     string
	Amount   decimal.Decimal
	Currency string
}

// TimeSeries holds the two parallel series of an insights window:
// sums per bucket by transaction type, and (expenses only) by
// category. Entries are sorted ascending by bucket key.
type TimeSeries struct {
	ByType     map[TransactionType][]TimeSeriesEntry
	ByCategory map[string][]TimeSeriesEntry
}

// DateRange is the resolved window and bucket granularity of an
// insights request.
type DateRange struct {
	Start   time.Time
	End     time.Time
	GroupBy Granularity
}

// Insights is the full read-only aggregate over one user's ledger for
// a date window. It is recomputed from the live stores on every
// request; there is no materialized state to keep in sync.
type Insights struct {
	TotalBalance     CurrencyTotals
	Income           CurrencyTotals
	Expense          CurrencyTotals
	Transfer         CurrencyTotals
	CategorySpending map[string]*CategorySpending
	AccountBalances  map[string]CurrencyTotals
	Accounts         []*Account
	TimeSeries       TimeSeries
	DateRange        DateRange
	TransactionCount int
}

package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/infrastructure/metrics"
)

// Spans above which the time series falls back to coarser buckets.
const (
	maxDaySpan  = 90 * 24 * time.Hour
	maxWeekSpan = 365 * 24 * time.Hour
)

// InsightsUseCase is the read-only aggregation path. It never mutates
// either store and recomputes everything from the committed state on
// each call.
type InsightsUseCase struct {
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	metrics     *metrics.Metrics
}

// NewInsightsUseCase creates a new InsightsUseCase.
func NewInsightsUseCase(accountRepo AccountRepository, txnRepo TransactionRepository, metrics *metrics.Metrics) *InsightsUseCase {
	return &InsightsUseCase{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		metrics:     metrics,
	}
}

// InsightsInput represents an insights request. Nil dates are not an
// error: missing or malformed parameters coerce to the current month.
type InsightsInput struct {
	UserID    string
	AccountID string
	Start     *time.Time
	End       *time.Time
}

// Insights aggregates the user's ledger over the resolved window:
// current balances per currency, income/expense/transfer sums, expense
// drill-down by category, and bucketed time series.
func (uc *InsightsUseCase) Insights(ctx context.Context, input InsightsInput) (*domain.Insights, error) {
	began := time.Now()

	start, end := resolveWindow(input.Start, input.End)
	granularity := granularityFor(start, end)

	accounts, err := uc.accountRepo.List(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.AccountID != "" {
		filtered := accounts[:0]
		for _, a := range accounts {
			if a.ID == input.AccountID {
				filtered = append(filtered, a)
			}
		}
		accounts = filtered
	}

	txns, err := uc.txnRepo.ListByDateRange(ctx, input.UserID, input.AccountID, start, end)
	if err != nil {
		return nil, err
	}

	out := &domain.Insights{
		TotalBalance:     domain.CurrencyTotals{},
		Income:           domain.CurrencyTotals{},
		Expense:          domain.CurrencyTotals{},
		Transfer:         domain.CurrencyTotals{},
		CategorySpending: map[string]*domain.CategorySpending{},
		AccountBalances:  map[string]domain.CurrencyTotals{},
		Accounts:         accounts,
		DateRange: domain.DateRange{
			Start:   start,
			End:     end,
			GroupBy: granularity,
		},
		TransactionCount: len(txns),
	}

	for _, account := range accounts {
		balances := domain.CurrencyTotals{}
		for _, b := range account.Balances {
			balances.Add(b.Currency, b.Amount)
			out.TotalBalance.Add(b.Currency, b.Amount)
		}
		out.AccountBalances[account.ID] = balances
	}

	byType := map[domain.TransactionType]*seriesAccumulator{}
	byCategory := map[string]*seriesAccumulator{}

	for _, txn := range txns {
		bucket := bucketKey(txn.Date, granularity)

		for _, c := range kindContributions(txn) {
			uc.kindTotals(out, txn.Type).Add(c.currency, c.amount)

			acc := byType[txn.Type]
			if acc == nil {
				acc = newSeriesAccumulator()
				byType[txn.Type] = acc
			}
			acc.add(bucket, c.currency, c.amount)
		}

		if txn.Type != domain.TransactionTypeExpense {
			continue
		}

		spending := out.CategorySpending[txn.Category]
		if spending == nil {
			spending = &domain.CategorySpending{Summary: domain.CurrencyTotals{}}
			out.CategorySpending[txn.Category] = spending
		}
		spending.Summary.Add(txn.Currency, txn.Amount)
		spending.Transactions = append(spending.Transactions, txn)

		acc := byCategory[txn.Category]
		if acc == nil {
			acc = newSeriesAccumulator()
			byCategory[txn.Category] = acc
		}
		acc.add(bucket, txn.Currency, txn.Amount)
	}

	out.TimeSeries.ByType = map[domain.TransactionType][]domain.TimeSeriesEntry{}
	for kind, acc := range byType {
		out.TimeSeries.ByType[kind] = acc.sorted()
	}

	out.TimeSeries.ByCategory = map[string][]domain.TimeSeriesEntry{}
	for category, acc := range byCategory {
		out.TimeSeries.ByCategory[category] = acc.sorted()
	}

	if uc.metrics != nil {
		uc.metrics.InsightsComputed.Inc()
		uc.metrics.InsightsDuration.Observe(time.Since(began).Seconds())
	}

	return out, nil
}

func (uc *InsightsUseCase) kindTotals(out *domain.Insights, kind domain.TransactionType) domain.CurrencyTotals {
	switch kind {
	case domain.TransactionTypeIncome:
		return out.Income
	case domain.TransactionTypeExpense:
		return out.Expense
	default:
		return out.Transfer
	}
}

type contribution struct {
	currency string
	amount   decimal.Decimal
}

// kindContributions returns the (currency, amount) pairs a transaction
// adds to its kind's sum. A transfer with stored details counts both
// legs; this is intentionally not netted to zero. Everything else
// counts its top-level amount once.
func kindContributions(txn *domain.Transaction) []contribution {
	if txn.Type == domain.TransactionTypeTransfer && txn.TransferDetails != nil {
		td := txn.TransferDetails
		return []contribution{
			{currency: td.FromCurrency, amount: td.FromAmount},
			{currency: td.ToCurrency, amount: td.ToAmount},
		}
	}
	return []contribution{{currency: txn.Currency, amount: txn.Amount}}
}

// resolveWindow coerces missing dates to the current month and an
// inverted range back to the defaults. Leniency here is deliberate:
// malformed parameters never reject an insights request.
func resolveWindow(start, end *time.Time) (time.Time, time.Time) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	from := monthStart
	if start != nil {
		from = startOfDay(start.UTC())
	}

	to := monthEnd
	if end != nil {
		to = endOfDay(end.UTC())
	}

	if to.Before(from) {
		return monthStart, monthEnd
	}

	return from, to
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func granularityFor(start, end time.Time) domain.Granularity {
	span := end.Sub(start)
	switch {
	case span <= maxDaySpan:
		return domain.GranularityDay
	case span <= maxWeekSpan:
		return domain.GranularityWeek
	default:
		return domain.GranularityMonth
	}
}

// bucketKey formats the series key for a date: the day itself, the
// Monday of its week, or its month, depending on granularity.
func bucketKey(t time.Time, g domain.Granularity) string {
	t = t.UTC()
	switch g {
	case domain.GranularityWeek:
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return startOfDay(t).AddDate(0, 0, 1-weekday).Format("2006-01-02")
	case domain.GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

type seriesAccumulator struct {
	sums map[string]map[string]decimal.Decimal
}

func newSeriesAccumulator() *seriesAccumulator {
	return &seriesAccumulator{sums: map[string]map[string]decimal.Decimal{}}
}

func (s *seriesAccumulator) add(bucket, currency string, amount decimal.Decimal) {
	byCurrency := s.sums[bucket]
	if byCurrency == nil {
		byCurrency = map[string]decimal.Decimal{}
		s.sums[bucket] = byCurrency
	}
	byCurrency[currency] = byCurrency[currency].Add(amount)
}

func (s *seriesAccumulator) sorted() []domain.TimeSeriesEntry {
	var entries []domain.TimeSeriesEntry
	for bucket, byCurrency := range s.sums {
		for currency, amount := range byCurrency {
			entries = append(entries, domain.TimeSeriesEntry{
				Time:     bucket,
				Amount:   amount,
				Currency: currency,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Time != entries[j].Time {
			return entries[i].Time < entries[j].Time
		}
		return entries[i].Currency < entries[j].Currency
	})

	return entries
}

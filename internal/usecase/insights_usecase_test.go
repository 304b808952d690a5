package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/usecase"
	"github.com/iho/flowtrack/internal/usecase/mocks"
)

func newInsightsFixture() (*usecase.InsightsUseCase, *mocks.MockAccountRepository, *mocks.MockTransactionRepository) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	return usecase.NewInsightsUseCase(accRepo, txnRepo, nil), accRepo, txnRepo
}

func seedTxn(txnRepo *mocks.MockTransactionRepository, id string, kind domain.TransactionType, amount int64, currency, category string, date time.Time) *domain.Transaction {
	txn := &domain.Transaction{
		ID:          id,
		UserID:      "user-1",
		Type:        kind,
		Amount:      decimal.NewFromInt(amount),
		Currency:    currency,
		Category:    category,
		Description: category,
		AccountID:   "acc-1",
		Date:        date,
	}
	txnRepo.Seed(txn)
	return txn
}

func TestInsightsWindowDefaults(t *testing.T) {
	uc, _, _ := newInsightsFixture()

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	past := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	future := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     *time.Time
		end       *time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "nil dates fall back to current month",
			wantStart: monthStart,
			wantEnd:   monthEnd,
		},
		{
			name:      "inverted range falls back to current month",
			start:     &future,
			end:       &past,
			wantStart: monthStart,
			wantEnd:   monthEnd,
		},
		{
			name:      "explicit dates widen to whole days",
			start:     &past,
			end:       &future,
			wantStart: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Insights(context.Background(), usecase.InsightsInput{
				UserID: "user-1",
				Start:  tt.start,
				End:    tt.end,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.DateRange.Start.Equal(tt.wantStart) {
				t.Errorf("start: expected %s, got %s", tt.wantStart, out.DateRange.Start)
			}
			if !out.DateRange.End.Equal(tt.wantEnd) {
				t.Errorf("end: expected %s, got %s", tt.wantEnd, out.DateRange.End)
			}
		})
	}
}

func TestInsightsGranularity(t *testing.T) {
	uc, _, _ := newInsightsFixture()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want domain.Granularity
	}{
		{"short window buckets by day", start.AddDate(0, 0, 30), domain.GranularityDay},
		{"quarter boundary still daily", start.AddDate(0, 0, 89), domain.GranularityDay},
		{"mid window buckets by week", start.AddDate(0, 0, 120), domain.GranularityWeek},
		{"long window buckets by month", start.AddDate(0, 0, 400), domain.GranularityMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := tt.end
			out, err := uc.Insights(context.Background(), usecase.InsightsInput{
				UserID: "user-1",
				Start:  &start,
				End:    &end,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.DateRange.GroupBy != tt.want {
				t.Errorf("expected granularity %s, got %s", tt.want, out.DateRange.GroupBy)
			}
		})
	}
}

func TestInsightsTotalsAndBalances(t *testing.T) {
	uc, accRepo, txnRepo := newInsightsFixture()

	accRepo.Seed(&domain.Account{
		ID: "acc-1", UserID: "user-1", Name: "Checking", Type: domain.AccountTypeBank,
		Balances: []domain.Balance{
			{Currency: "USD", Amount: decimal.NewFromInt(900)},
			{Currency: "INR", Amount: decimal.NewFromInt(100)},
		},
	})
	accRepo.Seed(&domain.Account{
		ID: "acc-2", UserID: "user-1", Name: "Savings", Type: domain.AccountTypeBank,
		Balances: []domain.Balance{
			{Currency: "USD", Amount: decimal.NewFromInt(50)},
		},
	})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	seedTxn(txnRepo, "t1", domain.TransactionTypeIncome, 3000, "USD", "Salary", start.AddDate(0, 0, 2))
	seedTxn(txnRepo, "t2", domain.TransactionTypeExpense, 120, "USD", "Food", start.AddDate(0, 0, 3))
	seedTxn(txnRepo, "t3", domain.TransactionTypeExpense, 80, "USD", "Food", start.AddDate(0, 0, 10))
	seedTxn(txnRepo, "t4", domain.TransactionTypeExpense, 500, "INR", "Travel", start.AddDate(0, 0, 12))

	out, err := uc.Insights(context.Background(), usecase.InsightsInput{
		UserID: "user-1",
		Start:  &start,
		End:    &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.TotalBalance["USD"]; !got.Equal(decimal.NewFromInt(950)) {
		t.Errorf("total USD: expected 950, got %s", got)
	}
	if got := out.TotalBalance["INR"]; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total INR: expected 100, got %s", got)
	}
	if got := out.AccountBalances["acc-2"]["USD"]; !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("acc-2 USD: expected 50, got %s", got)
	}

	if got := out.Income["USD"]; !got.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("income USD: expected 3000, got %s", got)
	}
	if got := out.Expense["USD"]; !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expense USD: expected 200, got %s", got)
	}
	if got := out.Expense["INR"]; !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expense INR: expected 500, got %s", got)
	}

	if out.TransactionCount != 4 {
		t.Errorf("expected 4 transactions counted, got %d", out.TransactionCount)
	}

	food := out.CategorySpending["Food"]
	if food == nil {
		t.Fatal("expected Food category spending")
	}
	if got := food.Summary["USD"]; !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Food USD: expected 200, got %s", got)
	}
	if len(food.Transactions) != 2 {
		t.Errorf("expected 2 Food transactions, got %d", len(food.Transactions))
	}
	if _, ok := out.CategorySpending["Salary"]; ok {
		t.Error("income categories must not appear in the spending drill-down")
	}
}

func TestInsightsTransferCountsBothLegs(t *testing.T) {
	uc, _, txnRepo := newInsightsFixture()

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	txnRepo.Seed(&domain.Transaction{
		ID: "t1", UserID: "user-1", Type: domain.TransactionTypeTransfer,
		Amount: decimal.NewFromInt(100), Currency: "USD",
		Category: "Transfer", Description: "fx",
		AccountID: "acc-1", ToAccountID: "acc-2",
		TransferDetails: &domain.TransferDetails{
			FromCurrency: "USD", FromAmount: decimal.NewFromInt(100),
			ToCurrency: "INR", ToAmount: decimal.NewFromInt(8350),
		},
		Date: start.AddDate(0, 0, 5),
	})

	out, err := uc.Insights(context.Background(), usecase.InsightsInput{
		UserID: "user-1",
		Start:  &start,
		End:    &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.Transfer["USD"]; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("transfer USD: expected 100, got %s", got)
	}
	if got := out.Transfer["INR"]; !got.Equal(decimal.NewFromInt(8350)) {
		t.Errorf("transfer INR: expected 8350, got %s", got)
	}

	series := out.TimeSeries.ByType[domain.TransactionTypeTransfer]
	if len(series) != 2 {
		t.Fatalf("expected both legs in the series, got %d entries", len(series))
	}
	// Same bucket, so ordering is by currency
	if series[0].Currency != "INR" || series[1].Currency != "USD" {
		t.Errorf("expected currency-ordered entries, got %s then %s", series[0].Currency, series[1].Currency)
	}
}

func TestInsightsTimeSeriesBuckets(t *testing.T) {
	uc, _, txnRepo := newInsightsFixture()

	// 120-day window forces weekly buckets
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 120)

	// Wed 2026-01-07 and Sun 2026-01-11 share the Monday 2026-01-05 bucket
	seedTxn(txnRepo, "t1", domain.TransactionTypeExpense, 30, "USD", "Food", time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC))
	seedTxn(txnRepo, "t2", domain.TransactionTypeExpense, 20, "USD", "Food", time.Date(2026, 1, 11, 23, 0, 0, 0, time.UTC))
	// Mon 2026-01-12 starts the next bucket
	seedTxn(txnRepo, "t3", domain.TransactionTypeExpense, 5, "USD", "Food", time.Date(2026, 1, 12, 0, 30, 0, 0, time.UTC))

	out, err := uc.Insights(context.Background(), usecase.InsightsInput{
		UserID: "user-1",
		Start:  &start,
		End:    &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := out.TimeSeries.ByCategory["Food"]
	if len(series) != 2 {
		t.Fatalf("expected 2 weekly buckets, got %d: %+v", len(series), series)
	}

	if series[0].Time != "2026-01-05" || !series[0].Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("first bucket: expected 2026-01-05 / 50, got %s / %s", series[0].Time, series[0].Amount)
	}
	if series[1].Time != "2026-01-12" || !series[1].Amount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("second bucket: expected 2026-01-12 / 5, got %s / %s", series[1].Time, series[1].Amount)
	}
}

func TestInsightsAccountFilter(t *testing.T) {
	uc, accRepo, txnRepo := newInsightsFixture()

	accRepo.Seed(&domain.Account{
		ID: "acc-1", UserID: "user-1", Name: "Checking", Type: domain.AccountTypeBank,
		Balances: []domain.Balance{{Currency: "USD", Amount: decimal.NewFromInt(100)}},
	})
	accRepo.Seed(&domain.Account{
		ID: "acc-2", UserID: "user-1", Name: "Savings", Type: domain.AccountTypeBank,
		Balances: []domain.Balance{{Currency: "USD", Amount: decimal.NewFromInt(900)}},
	})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	seedTxn(txnRepo, "t1", domain.TransactionTypeExpense, 10, "USD", "Food", start.AddDate(0, 0, 1))
	other := seedTxn(txnRepo, "t2", domain.TransactionTypeExpense, 99, "USD", "Food", start.AddDate(0, 0, 2))
	other.AccountID = "acc-2"

	out, err := uc.Insights(context.Background(), usecase.InsightsInput{
		UserID:    "user-1",
		AccountID: "acc-1",
		Start:     &start,
		End:       &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Accounts) != 1 || out.Accounts[0].ID != "acc-1" {
		t.Fatalf("expected only acc-1 in scope, got %d accounts", len(out.Accounts))
	}
	if got := out.TotalBalance["USD"]; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected filtered total 100, got %s", got)
	}
	if got := out.Expense["USD"]; !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected only acc-1 expenses, got %s", got)
	}
	if out.TransactionCount != 1 {
		t.Errorf("expected 1 transaction in scope, got %d", out.TransactionCount)
	}
}

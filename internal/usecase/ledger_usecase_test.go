package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/usecase"
	"github.com/iho/flowtrack/internal/usecase/mocks"
)

func newLedgerFixture() (*usecase.LedgerUseCase, *mocks.MockAccountRepository, *mocks.MockTransactionRepository, *mocks.MockTransactionManager) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	txMgr := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()

	uc := usecase.NewLedgerUseCase(txMgr, accRepo, txnRepo, idGen, nil, nil)
	return uc, accRepo, txnRepo, txMgr
}

func seedAccount(accRepo *mocks.MockAccountRepository, id, userID string, balances ...domain.Balance) {
	accRepo.Seed(&domain.Account{
		ID:       id,
		UserID:   userID,
		Name:     id,
		Type:     domain.AccountTypeBank,
		Balances: balances,
	})
}

func TestLedgerUseCase_CreateExpense(t *testing.T) {
	uc, accRepo, _, txMgr := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(500)})

	txn, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID:      "user-1",
		Type:        domain.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(120),
		Currency:    "USD",
		Category:    "Food",
		Description: "groceries",
		AccountID:   "acc-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acc, _ := accRepo.GetByID(context.Background(), "acc-1", "user-1")
	if got := acc.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(380)) {
		t.Errorf("expected balance 380, got %s", got)
	}

	if txn.ID == "" {
		t.Error("expected a generated transaction ID")
	}

	if len(txMgr.Began) != 1 || !txMgr.Began[0].Committed {
		t.Error("expected exactly one committed transaction")
	}
}

func TestLedgerUseCase_CreateIncomeCreatesCurrencyEntry(t *testing.T) {
	uc, accRepo, _, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(10)})

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID:      "user-1",
		Type:        domain.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(90000),
		Currency:    "INR",
		Category:    "Salary",
		Description: "august payroll",
		AccountID:   "acc-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acc, _ := accRepo.GetByID(context.Background(), "acc-1", "user-1")
	if got := acc.BalanceFor("INR"); !got.Equal(decimal.NewFromInt(90000)) {
		t.Errorf("expected INR entry to be created with 90000, got %s", got)
	}
	if got := acc.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected USD untouched, got %s", got)
	}
}

func TestLedgerUseCase_CreateCrossCurrencyTransfer(t *testing.T) {
	uc, accRepo, _, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(1000)})
	seedAccount(accRepo, "acc-2", "user-1", domain.Balance{Currency: "INR", Amount: decimal.NewFromInt(5000)})

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID:      "user-1",
		Type:        domain.TransactionTypeTransfer,
		Amount:      decimal.NewFromInt(100),
		Currency:    "USD",
		Category:    "Transfer",
		Description: "to savings",
		AccountID:   "acc-1",
		ToAccountID: "acc-2",
		TransferDetails: &domain.TransferDetails{
			FromCurrency: "USD",
			FromAmount:   decimal.NewFromInt(100),
			ToCurrency:   "INR",
			ToAmount:     decimal.NewFromInt(8350),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, _ := accRepo.GetByID(context.Background(), "acc-1", "user-1")
	dst, _ := accRepo.GetByID(context.Background(), "acc-2", "user-1")

	if got := src.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected source USD 900, got %s", got)
	}
	if got := dst.BalanceFor("INR"); !got.Equal(decimal.NewFromInt(13350)) {
		t.Errorf("expected destination INR 13350, got %s", got)
	}
	if got := dst.BalanceFor("USD"); !got.IsZero() {
		t.Errorf("expected no USD on destination, got %s", got)
	}
}

func TestLedgerUseCase_SameCurrencyTransferFallback(t *testing.T) {
	uc, accRepo, _, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(300)})
	seedAccount(accRepo, "acc-2", "user-1")

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID:      "user-1",
		Type:        domain.TransactionTypeTransfer,
		Amount:      decimal.NewFromInt(50),
		Currency:    "USD",
		Category:    "Transfer",
		Description: "move funds",
		AccountID:   "acc-1",
		ToAccountID: "acc-2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, _ := accRepo.GetByID(context.Background(), "acc-1", "user-1")
	dst, _ := accRepo.GetByID(context.Background(), "acc-2", "user-1")

	if got := src.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected source 250, got %s", got)
	}
	if got := dst.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected destination 50, got %s", got)
	}
}

func TestLedgerUseCase_CreateValidation(t *testing.T) {
	uc, accRepo, _, txMgr := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1")
	seedAccount(accRepo, "acc-2", "user-1")

	base := func() usecase.CreateTransactionInput {
		return usecase.CreateTransactionInput{
			UserID:      "user-1",
			Type:        domain.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(10),
			Currency:    "USD",
			Category:    "Food",
			Description: "lunch",
			AccountID:   "acc-1",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*usecase.CreateTransactionInput)
		wantField string
	}{
		{
			name:      "unknown type",
			mutate:    func(in *usecase.CreateTransactionInput) { in.Type = "refund" },
			wantField: "type",
		},
		{
			name:      "zero amount",
			mutate:    func(in *usecase.CreateTransactionInput) { in.Amount = decimal.Zero },
			wantField: "amount",
		},
		{
			name:      "negative amount",
			mutate:    func(in *usecase.CreateTransactionInput) { in.Amount = decimal.NewFromInt(-10) },
			wantField: "amount",
		},
		{
			name:      "unsupported currency",
			mutate:    func(in *usecase.CreateTransactionInput) { in.Currency = "DOGE" },
			wantField: "currency",
		},
		{
			name:      "missing category",
			mutate:    func(in *usecase.CreateTransactionInput) { in.Category = "" },
			wantField: "category",
		},
		{
			name:      "missing description",
			mutate:    func(in *usecase.CreateTransactionInput) { in.Description = "" },
			wantField: "description",
		},
		{
			name:      "missing account",
			mutate:    func(in *usecase.CreateTransactionInput) { in.AccountID = "" },
			wantField: "accountId",
		},
		{
			name: "transfer without destination",
			mutate: func(in *usecase.CreateTransactionInput) {
				in.Type = domain.TransactionTypeTransfer
			},
			wantField: "toAccountId",
		},
		{
			name: "transfer to same account",
			mutate: func(in *usecase.CreateTransactionInput) {
				in.Type = domain.TransactionTypeTransfer
				in.ToAccountID = "acc-1"
			},
			wantField: "toAccountId",
		},
		{
			name: "expense with destination",
			mutate: func(in *usecase.CreateTransactionInput) {
				in.ToAccountID = "acc-2"
			},
			wantField: "toAccountId",
		},
		{
			name: "transfer details on expense",
			mutate: func(in *usecase.CreateTransactionInput) {
				in.TransferDetails = &domain.TransferDetails{
					FromCurrency: "USD", FromAmount: decimal.NewFromInt(10),
					ToCurrency: "USD", ToAmount: decimal.NewFromInt(10),
				}
			},
			wantField: "transferDetails",
		},
		{
			name: "transfer details with bad currency",
			mutate: func(in *usecase.CreateTransactionInput) {
				in.Type = domain.TransactionTypeTransfer
				in.ToAccountID = "acc-2"
				in.TransferDetails = &domain.TransferDetails{
					FromCurrency: "USD", FromAmount: decimal.NewFromInt(10),
					ToCurrency: "XYZ", ToAmount: decimal.NewFromInt(10),
				}
			},
			wantField: "transferDetails.toCurrency",
		},
		{
			name: "transfer details with zero amount",
			mutate: func(in *usecase.CreateTransactionInput) {
				in.Type = domain.TransactionTypeTransfer
				in.ToAccountID = "acc-2"
				in.TransferDetails = &domain.TransferDetails{
					FromCurrency: "USD", FromAmount: decimal.Zero,
					ToCurrency: "INR", ToAmount: decimal.NewFromInt(10),
				}
			},
			wantField: "transferDetails.fromAmount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base()
			tt.mutate(&input)

			_, err := uc.CreateTransaction(context.Background(), input)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}

	// Validation failures never open a storage transaction
	if len(txMgr.Began) != 0 {
		t.Errorf("expected no storage transactions, got %d", len(txMgr.Began))
	}
}

func TestLedgerUseCase_CreateMissingAccount(t *testing.T) {
	uc, accRepo, txnRepo, txMgr := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1")

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID:      "user-1",
		Type:        domain.TransactionTypeTransfer,
		Amount:      decimal.NewFromInt(10),
		Currency:    "USD",
		Category:    "Transfer",
		Description: "to nowhere",
		AccountID:   "acc-1",
		ToAccountID: "acc-missing",
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	if len(txMgr.Began) != 1 || !txMgr.Began[0].RolledBack {
		t.Error("expected the storage transaction to roll back")
	}

	txns, total, err := txnRepo.List(context.Background(), usecase.TransactionFilter{UserID: "user-1"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 || len(txns) != 0 {
		t.Error("expected no transaction record to survive")
	}
}

func TestLedgerUseCase_AccountOwnershipEnforced(t *testing.T) {
	uc, accRepo, _, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-2", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(100)})

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID:      "user-1",
		Type:        domain.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(5),
		Currency:    "USD",
		Category:    "Food",
		Description: "coffee",
		AccountID:   "acc-1",
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected another user's account to be invisible, got %v", err)
	}
}

func TestLedgerUseCase_CommitFailureIsConsistencyFailure(t *testing.T) {
	uc, accRepo, _, txMgr := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(100)})

	txMgr.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
		return &mocks.MockTransaction{
			CommitFunc: func(ctx context.Context) error {
				return errors.New("connection reset")
			},
		}, nil
	}

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID:      "user-1",
		Type:        domain.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(5),
		Currency:    "USD",
		Category:    "Food",
		Description: "coffee",
		AccountID:   "acc-1",
	})
	if !errors.Is(err, domain.ErrConsistencyFailure) {
		t.Fatalf("expected ErrConsistencyFailure, got %v", err)
	}
}

func TestLedgerUseCase_DeleteRestoresBalances(t *testing.T) {
	uc, accRepo, txnRepo, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(1000)})
	seedAccount(accRepo, "acc-2", "user-1", domain.Balance{Currency: "INR", Amount: decimal.NewFromInt(2000)})

	inputs := []usecase.CreateTransactionInput{
		{
			UserID: "user-1", Type: domain.TransactionTypeExpense,
			Amount: decimal.NewFromInt(75), Currency: "USD",
			Category: "Bills", Description: "electricity", AccountID: "acc-1",
		},
		{
			UserID: "user-1", Type: domain.TransactionTypeIncome,
			Amount: decimal.NewFromInt(500), Currency: "INR",
			Category: "Gift", Description: "birthday", AccountID: "acc-2",
		},
		{
			UserID: "user-1", Type: domain.TransactionTypeTransfer,
			Amount: decimal.NewFromInt(40), Currency: "USD",
			Category: "Transfer", Description: "rebalance",
			AccountID: "acc-1", ToAccountID: "acc-2",
			TransferDetails: &domain.TransferDetails{
				FromCurrency: "USD", FromAmount: decimal.NewFromInt(40),
				ToCurrency: "INR", ToAmount: decimal.NewFromInt(3340),
			},
		},
	}

	for _, input := range inputs {
		txn, err := uc.CreateTransaction(context.Background(), input)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := uc.DeleteTransaction(context.Background(), txn.ID, "user-1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
	}

	acc1, _ := accRepo.GetByID(context.Background(), "acc-1", "user-1")
	acc2, _ := accRepo.GetByID(context.Background(), "acc-2", "user-1")

	if got := acc1.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected acc-1 USD restored to 1000, got %s", got)
	}
	if got := acc2.BalanceFor("INR"); !got.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected acc-2 INR restored to 2000, got %s", got)
	}

	_, total, _ := txnRepo.List(context.Background(), usecase.TransactionFilter{UserID: "user-1"})
	if total != 0 {
		t.Errorf("expected no surviving records, got %d", total)
	}
}

func TestLedgerUseCase_DeleteSkipsMissingAccountLeg(t *testing.T) {
	uc, accRepo, txnRepo, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(100)})
	seedAccount(accRepo, "acc-2", "user-1")

	txn, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID: "user-1", Type: domain.TransactionTypeTransfer,
		Amount: decimal.NewFromInt(30), Currency: "USD",
		Category: "Transfer", Description: "move",
		AccountID: "acc-1", ToAccountID: "acc-2",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// The destination account disappears before the delete
	accRepo.Remove("acc-2")

	if err := uc.DeleteTransaction(context.Background(), txn.ID, "user-1"); err != nil {
		t.Fatalf("expected delete to tolerate the missing account, got %v", err)
	}

	acc1, _ := accRepo.GetByID(context.Background(), "acc-1", "user-1")
	if got := acc1.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected surviving leg reversed to 100, got %s", got)
	}

	if _, err := txnRepo.GetByID(context.Background(), txn.ID, "user-1"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Error("expected the record to be removed")
	}
}

func TestLedgerUseCase_DeleteReversesInSortedAccountOrder(t *testing.T) {
	uc, accRepo, _, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-9", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(500)})
	seedAccount(accRepo, "acc-1", "user-1")

	// Transfer from the lexicographically larger account so stored
	// source/destination order differs from sorted order.
	txn, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID: "user-1", Type: domain.TransactionTypeTransfer,
		Amount: decimal.NewFromInt(40), Currency: "USD",
		Category: "Transfer", Description: "move",
		AccountID: "acc-9", ToAccountID: "acc-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var touched []string
	accRepo.ApplyBalanceDeltaFunc = func(ctx context.Context, tx usecase.Transaction, accountID, currency string, delta decimal.Decimal, updatedAt time.Time) error {
		touched = append(touched, accountID)
		return nil
	}

	if err := uc.DeleteTransaction(context.Background(), txn.ID, "user-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// Same lock order as create, which takes accounts sorted by ID.
	want := []string{"acc-1", "acc-9"}
	if len(touched) != len(want) || touched[0] != want[0] || touched[1] != want[1] {
		t.Fatalf("expected reversal order %v, got %v", want, touched)
	}
}

func TestLedgerUseCase_DeleteTwice(t *testing.T) {
	uc, accRepo, _, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(100)})

	txn, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID: "user-1", Type: domain.TransactionTypeExpense,
		Amount: decimal.NewFromInt(10), Currency: "USD",
		Category: "Food", Description: "snack", AccountID: "acc-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.DeleteTransaction(context.Background(), txn.ID, "user-1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	err = uc.DeleteTransaction(context.Background(), txn.ID, "user-1")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound on second delete, got %v", err)
	}

	// The second attempt must not shift the balance again
	acc, _ := accRepo.GetByID(context.Background(), "acc-1", "user-1")
	if got := acc.BalanceFor("USD"); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance 100 after double delete, got %s", got)
	}
}

func TestLedgerUseCase_DeleteOtherUsersTransaction(t *testing.T) {
	uc, accRepo, txnRepo, _ := newLedgerFixture()
	seedAccount(accRepo, "acc-1", "user-1", domain.Balance{Currency: "USD", Amount: decimal.NewFromInt(100)})

	txn, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		UserID: "user-1", Type: domain.TransactionTypeExpense,
		Amount: decimal.NewFromInt(10), Currency: "USD",
		Category: "Food", Description: "snack", AccountID: "acc-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err = uc.DeleteTransaction(context.Background(), txn.ID, "user-2")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected other user's delete to see nothing, got %v", err)
	}

	if _, err := txnRepo.GetByID(context.Background(), txn.ID, "user-1"); err != nil {
		t.Error("expected the record to survive")
	}
}

func TestLedgerUseCase_ListClampsPagination(t *testing.T) {
	uc, _, txnRepo, _ := newLedgerFixture()

	var captured usecase.TransactionFilter
	txnRepo.ListFunc = func(ctx context.Context, filter usecase.TransactionFilter) ([]*domain.Transaction, int64, error) {
		captured = filter
		return nil, 0, nil
	}

	_, _, err := uc.ListTransactions(context.Background(), usecase.TransactionFilter{
		UserID: "user-1",
		Limit:  100000,
		Offset: -3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Limit != 100 || captured.Offset != 0 {
		t.Errorf("expected clamped pagination (100, 0), got (%d, %d)", captured.Limit, captured.Offset)
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/flowtrack/internal/adapter/http/dto"
	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/usecase"
)

type accountServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	getFn    func(ctx context.Context, id, userID string) (*domain.Account, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Account, error)
	updateFn func(ctx context.Context, input usecase.UpdateAccountInput) (*domain.Account, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (s *accountServiceStub) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, input)
}

func (s *accountServiceStub) GetAccount(ctx context.Context, id, userID string) (*domain.Account, error) {
	return s.getFn(ctx, id, userID)
}

func (s *accountServiceStub) ListAccounts(ctx context.Context, userID string) ([]*domain.Account, error) {
	return s.listFn(ctx, userID)
}

func (s *accountServiceStub) UpdateAccount(ctx context.Context, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return s.updateFn(ctx, input)
}

func (s *accountServiceStub) DeleteAccount(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

func TestAccountHandler_Create_Success(t *testing.T) {
	account := &domain.Account{
		ID:     "acc-1",
		UserID: "user-1",
		Name:   "Everyday",
		Type:   domain.AccountTypeBank,
		Balances: []domain.Balance{
			{Currency: "USD", Amount: decimal.NewFromInt(100)},
		},
	}

	var captured usecase.CreateAccountInput
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			captured = input
			return account, nil
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Name: "Everyday",
		Type: "bank",
		Balances: []dto.InitialBalance{
			{Currency: "USD", Amount: decimal.NewFromInt(100)},
		},
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.UserID != "user-1" || captured.Name != "Everyday" || len(captured.Balances) != 1 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "acc-1" {
		t.Fatalf("expected account ID acc-1, got %s", resp.ID)
	}
}

func TestAccountHandler_Create_Unauthenticated(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			t.Fatal("CreateAccount should not be called without a user")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			t.Fatal("CreateAccount should not be called for invalid payload")
			return nil, nil
		},
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString("{invalid json")), "user-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_ValidationError(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			return nil, domain.NewValidationError("type", "must be bank, crypto_wallet, crypto_card or other")
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{Name: "Everyday", Type: "checking"})
	req := authed(httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Field != "type" {
		t.Fatalf("expected field type in error, got %+v", resp)
	}
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		getFn: func(ctx context.Context, id, userID string) (*domain.Account, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/accounts/acc-missing", nil), "user-1")
	req = setChiURLParam(req, "id", "acc-missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_List(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		listFn: func(ctx context.Context, userID string) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: "acc-1", UserID: userID, Name: "Everyday", Type: domain.AccountTypeBank},
				{ID: "acc-2", UserID: userID, Name: "Savings", Type: domain.AccountTypeBank},
			}, nil
		},
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/accounts", nil), "user-1")
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListAccountsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %+v", resp)
	}
}

func TestAccountHandler_Delete(t *testing.T) {
	var deletedID, deletedBy string
	handler := NewAccountHandler(&accountServiceStub{
		deleteFn: func(ctx context.Context, id, userID string) error {
			deletedID, deletedBy = id, userID
			return nil
		},
	})

	req := authed(httptest.NewRequest(http.MethodDelete, "/accounts/acc-1", nil), "user-1")
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deletedID != "acc-1" || deletedBy != "user-1" {
		t.Fatalf("expected delete of acc-1 by user-1, got %s by %s", deletedID, deletedBy)
	}
}

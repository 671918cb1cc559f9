package handlers

import (
	"context"
	"net/http"
	"testing"

	"vibewealth/internal/models"
	"vibewealth/internal/services"
)

func TestCreateAccount(t *testing.T) {
	handler := newTestHandler(t, testDeps{accounts: stubAccountService{
		createFn: func(_ context.Context, userID int64, name string) (models.Account, error) {
			return models.Account{ID: 1, UserID: userID, Name: name, Balance: 500}, nil
		},
	}})
	rr := doRequest(t, handler, http.MethodPost, "/accounts?user_id=2", createAccountRequest{Name: "Savings"}, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	decodeBody(t, rr, &payload)
	if payload["user_id"] != float64(2) || payload["name"] != "Savings" {
		t.Fatalf("unexpected account %v", payload)
	}
	if payload["balance_display"] != "5.00" {
		t.Fatalf("expected formatted balance, got %v", payload["balance_display"])
	}
}

func TestCreateAccountUnknownUser(t *testing.T) {
	handler := newTestHandler(t, testDeps{accounts: stubAccountService{
		createFn: func(context.Context, int64, string) (models.Account, error) {
			return models.Account{}, services.ErrUserNotFound
		},
	}})
	rr := doRequest(t, handler, http.MethodPost, "/accounts?user_id=9", createAccountRequest{Name: "Savings"}, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if errorMessage(t, rr) != services.ErrUserNotFound.Error() {
		t.Fatalf("unexpected message %q", errorMessage(t, rr))
	}
}

func TestAccountsRequireUserID(t *testing.T) {
	handler := newTestHandler(t, testDeps{})
	for _, target := range []string{"/accounts", "/accounts?user_id=x", "/transactions", "/goals"} {
		rr := doRequest(t, handler, http.MethodGet, target, nil, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestListAccountsEmptyIsArray(t *testing.T) {
	handler := newTestHandler(t, testDeps{})
	rr := doRequest(t, handler, http.MethodGet, "/accounts?user_id=1", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestUpdateAccount(t *testing.T) {
	var gotAccount, gotUser, gotBalance int64
	handler := newTestHandler(t, testDeps{accounts: stubAccountService{
		updateFn: func(_ context.Context, accountID, userID, newBalance int64) (models.Account, error) {
			gotAccount, gotUser, gotBalance = accountID, userID, newBalance
			if userID != 1 {
				return models.Account{}, services.ErrAccessDenied
			}
			return models.Account{ID: accountID, UserID: userID, Balance: newBalance}, nil
		},
	}})

	rr := doRequest(t, handler, http.MethodPut, "/accounts/7?user_id=1&bal=-250", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if gotAccount != 7 || gotUser != 1 || gotBalance != -250 {
		t.Fatalf("unexpected call %d %d %d", gotAccount, gotUser, gotBalance)
	}
	var payload map[string]any
	decodeBody(t, rr, &payload)
	if payload["balance_display"] != "-2.50" {
		t.Fatalf("unexpected display %v", payload["balance_display"])
	}

	rr = doRequest(t, handler, http.MethodPut, "/accounts/7?user_id=2&bal=1", nil, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	rr = doRequest(t, handler, http.MethodPut, "/accounts/7?user_id=1&bal=lots", nil, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad bal, got %d", rr.Code)
	}
	rr = doRequest(t, handler, http.MethodPut, "/accounts/abc?user_id=1&bal=1", nil, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", rr.Code)
	}
}

func TestUpdateAccountBalanceOutOfRange(t *testing.T) {
	handler := newTestHandler(t, testDeps{accounts: stubAccountService{
		updateFn: func(context.Context, int64, int64, int64) (models.Account, error) {
			return models.Account{}, services.ErrBalanceOutOfRange
		},
	}})
	rr := doRequest(t, handler, http.MethodPut, "/accounts/7?user_id=1&bal=9223372036854775807", nil, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if msg := errorMessage(t, rr); msg != services.ErrBalanceOutOfRange.Error() {
		t.Fatalf("unexpected error %q", msg)
	}
}

func TestDeleteAccount(t *testing.T) {
	handler := newTestHandler(t, testDeps{accounts: stubAccountService{
		deleteFn: func(_ context.Context, accountID, _ int64) error {
			if accountID != 3 {
				return services.ErrAccountNotFound
			}
			return nil
		},
	}})
	rr := doRequest(t, handler, http.MethodDelete, "/accounts/3?user_id=1", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var payload map[string]string
	decodeBody(t, rr, &payload)
	if payload["message"] != "Account deleted successfully" {
		t.Fatalf("unexpected body %v", payload)
	}
	rr = doRequest(t, handler, http.MethodDelete, "/accounts/4?user_id=1", nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestSelfCheck(t *testing.T) {
	handler := newTestHandler(t, testDeps{accounts: stubAccountService{
		selfCheckFn: func(_ context.Context, userID int64) ([]services.Reconciliation, error) {
			return []services.Reconciliation{{AccountID: 1, StoredBalance: 300, TransactionSum: 300}}, nil
		},
	}})
	rr := doRequest(t, handler, http.MethodGet, "/accounts/self-check?user_id=1", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var rows []services.Reconciliation
	decodeBody(t, rr, &rows)
	if len(rows) != 1 || rows[0].Difference != 0 || rows[0].StoredBalance != 300 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibewealth/internal/config"
	"vibewealth/internal/models"
	"vibewealth/internal/services"
	"vibewealth/internal/websocket"

	"github.com/sirupsen/logrus/hooks/test"
)

const testSecret = "secret"

type stubAuthService struct {
	registerFn func(ctx context.Context, in services.RegisterInput) (services.RegisterResult, error)
	loginFn    func(ctx context.Context, email, password string) (services.LoginResult, error)
	meFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (s stubAuthService) Register(ctx context.Context, in services.RegisterInput) (services.RegisterResult, error) {
	if s.registerFn == nil {
		return services.RegisterResult{}, nil
	}
	return s.registerFn(ctx, in)
}

func (s stubAuthService) Login(ctx context.Context, email, password string) (services.LoginResult, error) {
	if s.loginFn == nil {
		return services.LoginResult{}, nil
	}
	return s.loginFn(ctx, email, password)
}

func (s stubAuthService) Me(ctx context.Context, userID int64) (models.User, error) {
	if s.meFn == nil {
		return models.User{ID: userID}, nil
	}
	return s.meFn(ctx, userID)
}

type stubAccountService struct {
	createFn    func(ctx context.Context, userID int64, name string) (models.Account, error)
	listFn      func(ctx context.Context, userID int64) ([]models.Account, error)
	updateFn    func(ctx context.Context, accountID, userID, newBalance int64) (models.Account, error)
	deleteFn    func(ctx context.Context, accountID, userID int64) error
	selfCheckFn func(ctx context.Context, userID int64) ([]services.Reconciliation, error)
}

func (s stubAccountService) CreateAccount(ctx context.Context, userID int64, name string) (models.Account, error) {
	if s.createFn == nil {
		return models.Account{UserID: userID, Name: name}, nil
	}
	return s.createFn(ctx, userID, name)
}

func (s stubAccountService) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, userID)
}

func (s stubAccountService) UpdateAccount(ctx context.Context, accountID, userID, newBalance int64) (models.Account, error) {
	if s.updateFn == nil {
		return models.Account{ID: accountID, UserID: userID, Balance: newBalance}, nil
	}
	return s.updateFn(ctx, accountID, userID, newBalance)
}

func (s stubAccountService) DeleteAccount(ctx context.Context, accountID, userID int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, accountID, userID)
}

func (s stubAccountService) SelfCheck(ctx context.Context, userID int64) ([]services.Reconciliation, error) {
	if s.selfCheckFn == nil {
		return nil, nil
	}
	return s.selfCheckFn(ctx, userID)
}

type stubTransactionService struct {
	createFn func(ctx context.Context, userID int64, txn models.Transaction) (models.Transaction, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Transaction, error)
}

func (s stubTransactionService) CreateTransaction(ctx context.Context, userID int64, txn models.Transaction) (models.Transaction, error) {
	if s.createFn == nil {
		return txn, nil
	}
	return s.createFn(ctx, userID, txn)
}

func (s stubTransactionService) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, userID)
}

type stubGoalService struct {
	createFn func(ctx context.Context, in services.GoalInput) (models.Goal, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Goal, error)
}

func (s stubGoalService) CreateGoal(ctx context.Context, in services.GoalInput) (models.Goal, error) {
	if s.createFn == nil {
		return models.Goal{ID: in.ID, UserID: in.UserID, Name: in.Name}, nil
	}
	return s.createFn(ctx, in)
}

func (s stubGoalService) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, userID)
}

type stubChatbot struct {
	sendFn func(ctx context.Context, query string) (string, error)
	readFn func() (string, error)
}

func (s stubChatbot) SendQuery(ctx context.Context, query string) (string, error) {
	if s.sendFn == nil {
		return query, nil
	}
	return s.sendFn(ctx, query)
}

func (s stubChatbot) ReadReply() (string, error) {
	if s.readFn == nil {
		return "", nil
	}
	return s.readFn()
}

type testDeps struct {
	auth         AuthService
	accounts     AccountService
	transactions TransactionService
	goals        GoalService
	chatbot      Chatbot
	cfg          *config.Config
}

func newTestHandler(t *testing.T, deps testDeps) http.Handler {
	t.Helper()
	if deps.auth == nil {
		deps.auth = stubAuthService{}
	}
	if deps.accounts == nil {
		deps.accounts = stubAccountService{}
	}
	if deps.transactions == nil {
		deps.transactions = stubTransactionService{}
	}
	if deps.goals == nil {
		deps.goals = stubGoalService{}
	}
	if deps.chatbot == nil {
		deps.chatbot = stubChatbot{}
	}
	cfg := config.Config{JWTSecret: testSecret, TokenTTL: time.Minute, AllowedOrigins: "*"}
	if deps.cfg != nil {
		cfg = *deps.cfg
	}
	logger, _ := test.NewNullLogger()
	return New(cfg, logger, deps.auth, deps.accounts, deps.transactions, deps.goals, deps.chatbot, websocket.NewHub()).Routes()
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	decodeBody(t, rr, &payload)
	return payload["error"]
}

package handlers

import (
	"context"

	"vibewealth/internal/models"
	"vibewealth/internal/services"
)

type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (services.RegisterResult, error)
	Login(ctx context.Context, email, password string) (services.LoginResult, error)
	Me(ctx context.Context, userID int64) (models.User, error)
}

type AccountService interface {
	CreateAccount(ctx context.Context, userID int64, name string) (models.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]models.Account, error)
	UpdateAccount(ctx context.Context, accountID, userID, newBalance int64) (models.Account, error)
	DeleteAccount(ctx context.Context, accountID, userID int64) error
	SelfCheck(ctx context.Context, userID int64) ([]services.Reconciliation, error)
}

type TransactionService interface {
	CreateTransaction(ctx context.Context, userID int64, txn models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
}

type GoalService interface {
	CreateGoal(ctx context.Context, in services.GoalInput) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
}

type Chatbot interface {
	SendQuery(ctx context.Context, query string) (string, error)
	ReadReply() (string, error)
}

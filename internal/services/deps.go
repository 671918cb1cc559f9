package services

import (
	"context"

	"vibewealth/internal/models"
	"vibewealth/internal/websocket"
)

// Repositories are satisfied by both the PostgreSQL stores in
// internal/store and the in-memory stores in internal/store/memory.
// Lookups return store.ErrNotFound for missing rows and inserts return
// store.ErrDuplicate for id or email collisions.

type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByID(ctx context.Context, userID int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type AccountRepository interface {
	Create(ctx context.Context, account models.Account) (models.Account, error)
	GetByID(ctx context.Context, accountID int64) (models.Account, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Account, error)
	Delete(ctx context.Context, accountID int64) error
}

type TransactionRepository interface {
	// Record atomically applies the transaction's signed delta to its
	// account and stores it, returning both updated records.
	Record(ctx context.Context, txn models.Transaction) (models.Transaction, models.Account, error)
	// Adjust atomically records the credit or debit that moves the
	// account's balance to target. The returned transaction is zero when
	// the balance already equals target. Both methods return
	// store.ErrOutOfRange when the balance would leave the int64 range.
	Adjust(ctx context.Context, accountID, target int64) (models.Transaction, models.Account, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}

type GoalRepository interface {
	Create(ctx context.Context, goal models.Goal) (models.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Goal, error)
}

type BalanceHub interface {
	BroadcastBalance(userID int64, update websocket.BalanceUpdate)
}

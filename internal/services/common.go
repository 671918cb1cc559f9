package services

import (
	"context"
	"errors"

	"vibewealth/internal/models"
	"vibewealth/internal/money"
	"vibewealth/internal/store"
	"vibewealth/internal/websocket"
)

func requireUser(ctx context.Context, users UserRepository, userID int64) (models.User, error) {
	user, err := users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// ownedAccount loads an account and checks that userID owns it.
func ownedAccount(ctx context.Context, accounts AccountRepository, accountID, userID int64) (models.Account, error) {
	account, err := accounts.GetByID(ctx, accountID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	if account.UserID != userID {
		return models.Account{}, ErrAccessDenied
	}
	return account, nil
}

func publishBalance(hub BalanceHub, account models.Account) {
	if hub == nil {
		return
	}
	hub.BroadcastBalance(account.UserID, websocket.BalanceUpdate{
		AccountID:      account.ID,
		Balance:        account.Balance,
		BalanceDisplay: money.FormatMinor(account.Balance),
	})
}

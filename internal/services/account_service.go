package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vibewealth/internal/metrics"
	"vibewealth/internal/models"
	"vibewealth/internal/store"
	"vibewealth/internal/validator"

	"github.com/sirupsen/logrus"
)

type AccountService struct {
	users        UserRepository
	accounts     AccountRepository
	transactions TransactionRepository
	hub          BalanceHub
	log          logrus.FieldLogger
}

func NewAccountService(users UserRepository, accounts AccountRepository, transactions TransactionRepository, hub BalanceHub, log logrus.FieldLogger) *AccountService {
	return &AccountService{users: users, accounts: accounts, transactions: transactions, hub: hub, log: log}
}

func (s *AccountService) CreateAccount(ctx context.Context, userID int64, name string) (models.Account, error) {
	if err := validator.ValidateName(name); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := requireUser(ctx, s.users, userID); err != nil {
		return models.Account{}, err
	}
	account, err := s.accounts.Create(ctx, models.Account{UserID: userID, Name: strings.TrimSpace(name)})
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrUserNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	metrics.AccountsCreated.Inc()
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	if _, err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	return s.accounts.ListByUser(ctx, userID)
}

// UpdateAccount sets the account balance to newBalance. The change is
// recorded as an adjustment transaction for the difference so the balance
// stays equal to the sum of the account's transactions.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID, userID, newBalance int64) (models.Account, error) {
	if _, err := ownedAccount(ctx, s.accounts, accountID, userID); err != nil {
		return models.Account{}, err
	}
	recorded, updated, err := s.transactions.Adjust(ctx, accountID, newBalance)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Account{}, ErrAccountNotFound
	case errors.Is(err, store.ErrOutOfRange):
		return models.Account{}, ErrBalanceOutOfRange
	case err != nil:
		return models.Account{}, err
	}
	if recorded.ID == 0 {
		return updated, nil
	}
	metrics.TransactionsTotal.WithLabelValues(string(recorded.Type)).Inc()
	s.log.WithFields(logrus.Fields{
		"account_id":     accountID,
		"transaction_id": recorded.ID,
		"delta":          recorded.Delta(),
	}).Info("balance adjusted")
	publishBalance(s.hub, updated)
	return updated, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID, userID int64) error {
	if _, err := ownedAccount(ctx, s.accounts, accountID, userID); err != nil {
		return err
	}
	err := s.accounts.Delete(ctx, accountID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}

// Reconciliation compares an account's stored balance with the sum of its
// signed transactions.
type Reconciliation struct {
	AccountID      int64  `json:"account_id"`
	Name           string `json:"name"`
	StoredBalance  int64  `json:"stored_balance"`
	TransactionSum int64  `json:"transaction_sum"`
	Difference     int64  `json:"difference"`
}

func (s *AccountService) SelfCheck(ctx context.Context, userID int64) ([]Reconciliation, error) {
	accounts, err := s.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sums := make(map[int64]int64, len(accounts))
	for _, txn := range txns {
		sums[txn.AccountID] += txn.Delta()
	}
	out := make([]Reconciliation, 0, len(accounts))
	for _, account := range accounts {
		sum := sums[account.ID]
		out = append(out, Reconciliation{
			AccountID:      account.ID,
			Name:           account.Name,
			StoredBalance:  account.Balance,
			TransactionSum: sum,
			Difference:     account.Balance - sum,
		})
	}
	return out, nil
}

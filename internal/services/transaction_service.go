package services

import (
	"context"
	"errors"

	"vibewealth/internal/metrics"
	"vibewealth/internal/models"
	"vibewealth/internal/store"

	"github.com/sirupsen/logrus"
)

type TransactionService struct {
	users        UserRepository
	accounts     AccountRepository
	transactions TransactionRepository
	hub          BalanceHub
	log          logrus.FieldLogger
}

func NewTransactionService(users UserRepository, accounts AccountRepository, transactions TransactionRepository, hub BalanceHub, log logrus.FieldLogger) *TransactionService {
	return &TransactionService{users: users, accounts: accounts, transactions: transactions, hub: hub, log: log}
}

// CreateTransaction credits or debits an account owned by userID. Debits
// may take the balance below zero.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID int64, txn models.Transaction) (models.Transaction, error) {
	if !txn.Type.Valid() {
		return models.Transaction{}, ErrInvalidTransactionType
	}
	if txn.Amount <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}
	if txn.ID < 0 {
		return models.Transaction{}, ErrInvalidInput
	}
	if _, err := ownedAccount(ctx, s.accounts, txn.AccountID, userID); err != nil {
		return models.Transaction{}, err
	}
	recorded, account, err := s.transactions.Record(ctx, txn)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Transaction{}, ErrAccountNotFound
	case errors.Is(err, store.ErrDuplicate):
		return models.Transaction{}, ErrDuplicateTransaction
	case errors.Is(err, store.ErrOutOfRange):
		return models.Transaction{}, ErrBalanceOutOfRange
	case err != nil:
		s.log.WithError(err).WithField("account_id", txn.AccountID).Error("record transaction")
		return models.Transaction{}, err
	}
	metrics.TransactionsTotal.WithLabelValues(string(recorded.Type)).Inc()
	publishBalance(s.hub, account)
	return recorded, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	if _, err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	return s.transactions.ListByUser(ctx, userID)
}

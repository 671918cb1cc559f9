package memory

import (
	"context"
	"sort"

	"vibewealth/internal/models"
	"vibewealth/internal/store"
)

type TransactionStore struct {
	s *state
}

func (t *TransactionStore) Record(_ context.Context, txn models.Transaction) (models.Transaction, models.Account, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	account, ok := t.s.accounts[txn.AccountID]
	if !ok {
		return models.Transaction{}, models.Account{}, store.ErrNotFound
	}
	return t.record(account, txn)
}

// Adjust records the transaction that moves the account's balance to target.
// The difference is computed under the store lock. When the balance already
// equals target no transaction is stored and the returned one is zero.
func (t *TransactionStore) Adjust(_ context.Context, accountID, target int64) (models.Transaction, models.Account, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	account, ok := t.s.accounts[accountID]
	if !ok {
		return models.Transaction{}, models.Account{}, store.ErrNotFound
	}
	adjustment, ok := models.Adjustment(accountID, account.Balance, target)
	if !ok {
		return models.Transaction{}, models.Account{}, store.ErrOutOfRange
	}
	if adjustment.Amount == 0 {
		return models.Transaction{}, account, nil
	}
	return t.record(account, adjustment)
}

// record must be called with the write lock held.
func (t *TransactionStore) record(account models.Account, txn models.Transaction) (models.Transaction, models.Account, error) {
	balance, ok := models.AddDelta(account.Balance, txn.Delta())
	if !ok {
		return models.Transaction{}, models.Account{}, store.ErrOutOfRange
	}
	if txn.ID > 0 {
		if _, exists := t.s.transactions[txn.ID]; exists {
			return models.Transaction{}, models.Account{}, store.ErrDuplicate
		}
		t.s.claimID("transactions", txn.ID)
	} else {
		txn.ID = t.s.nextID("transactions")
	}
	txn.CreatedAt = t.s.now()
	account.Balance = balance
	t.s.accounts[account.ID] = account
	t.s.transactions[txn.ID] = txn
	return txn, account, nil
}

func (t *TransactionStore) ListByUser(_ context.Context, userID int64) ([]models.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	out := []models.Transaction{}
	for _, txn := range t.s.transactions {
		account, ok := t.s.accounts[txn.AccountID]
		if ok && account.UserID == userID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

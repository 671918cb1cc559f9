package memory

import (
	"context"
	"sort"

	"vibewealth/internal/models"
	"vibewealth/internal/store"
)

type AccountStore struct {
	s *state
}

func (a *AccountStore) Create(_ context.Context, account models.Account) (models.Account, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.users[account.UserID]; !ok {
		return models.Account{}, store.ErrNotFound
	}
	account.ID = a.s.nextID("accounts")
	account.CreatedAt = a.s.now()
	a.s.accounts[account.ID] = account
	return account, nil
}

func (a *AccountStore) GetByID(_ context.Context, accountID int64) (models.Account, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	account, ok := a.s.accounts[accountID]
	if !ok {
		return models.Account{}, store.ErrNotFound
	}
	return account, nil
}

func (a *AccountStore) ListByUser(_ context.Context, userID int64) ([]models.Account, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	out := []models.Account{}
	for _, account := range a.s.accounts {
		if account.UserID == userID {
			out = append(out, account)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes the account together with its transactions.
func (a *AccountStore) Delete(_ context.Context, accountID int64) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.accounts[accountID]; !ok {
		return store.ErrNotFound
	}
	delete(a.s.accounts, accountID)
	for id, txn := range a.s.transactions {
		if txn.AccountID == accountID {
			delete(a.s.transactions, id)
		}
	}
	return nil
}

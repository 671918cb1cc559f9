package store

import (
	"context"

	"vibewealth/internal/models"
)

type AccountStore struct {
	db DB
}

func NewAccountStore(db DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Create(ctx context.Context, account models.Account) (models.Account, error) {
	err := s.db.GetContext(ctx, &account, `
		INSERT INTO accounts (user_id, name, balance)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, balance, created_at
	`, account.UserID, account.Name, account.Balance)
	if err != nil {
		return models.Account{}, translate(err)
	}
	return account, nil
}

func (s *AccountStore) GetByID(ctx context.Context, accountID int64) (models.Account, error) {
	var row models.Account
	err := s.db.GetContext(ctx, &row, `
		SELECT id, user_id, name, balance, created_at
		FROM accounts
		WHERE id = $1
	`, accountID)
	if err != nil {
		return models.Account{}, translate(err)
	}
	return row, nil
}

func (s *AccountStore) ListByUser(ctx context.Context, userID int64) ([]models.Account, error) {
	rows := []models.Account{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, name, balance, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Delete removes the account; its transactions go with it through the
// foreign key cascade.
func (s *AccountStore) Delete(ctx context.Context, accountID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return translate(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"

	"vibewealth/internal/models"
)

type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	err := s.db.GetContext(ctx, &user, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at
	`, user.Name, user.Email, user.PasswordHash)
	if err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *UserStore) GetByID(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`, userID)
	if err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`, email)
	if err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

package memory

import (
	"context"
	"strings"

	"vibewealth/internal/models"
	"vibewealth/internal/store"
)

type UserStore struct {
	s *state
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *UserStore) Create(_ context.Context, user models.User) (models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	key := emailKey(user.Email)
	if _, exists := u.s.emails[key]; exists {
		return models.User{}, store.ErrDuplicate
	}
	user.ID = u.s.nextID("users")
	user.CreatedAt = u.s.now()
	u.s.users[user.ID] = user
	u.s.emails[key] = user.ID
	return user, nil
}

func (u *UserStore) GetByID(_ context.Context, userID int64) (models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[userID]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (u *UserStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	id, ok := u.s.emails[emailKey(email)]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u.s.users[id], nil
}

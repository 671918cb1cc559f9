package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vibewealth/internal/auth"
	"vibewealth/internal/models"
	"vibewealth/internal/store"
	"vibewealth/internal/validator"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	users    UserRepository
	accounts AccountRepository
	secret   string
	ttl      time.Duration
	log      logrus.FieldLogger
}

func NewAuthService(users UserRepository, accounts AccountRepository, secret string, ttl time.Duration, log logrus.FieldLogger) *AuthService {
	return &AuthService{users: users, accounts: accounts, secret: secret, ttl: ttl, log: log}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	email := normalizeEmail(in.Email)
	if err := validator.ValidateRegistration(in.Name, email, in.Password); err != nil {
		return RegisterResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return RegisterResult{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return RegisterResult{}, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return RegisterResult{}, err
	}
	user, err := s.users.Create(ctx, models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return RegisterResult{}, ErrEmailTaken
	}
	if err != nil {
		return RegisterResult{}, err
	}
	token, err := auth.GenerateToken(s.secret, user.ID, s.ttl)
	if err != nil {
		return RegisterResult{}, err
	}
	s.log.WithField("user_id", user.ID).Info("user registered")
	return RegisterResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, ErrUserNotFound
	}
	if err != nil {
		return LoginResult{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		s.log.WithField("user_id", user.ID).Warn("login rejected")
		return LoginResult{}, ErrInvalidCredentials
	}
	token, err := auth.GenerateToken(s.secret, user.ID, s.ttl)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Name: user.Name}, nil
}

// Me returns the user with Balance set to the total over their accounts.
func (s *AuthService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := requireUser(ctx, s.users, userID)
	if err != nil {
		return models.User{}, err
	}
	accounts, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	for _, account := range accounts {
		user.Balance += account.Balance
	}
	return user, nil
}
